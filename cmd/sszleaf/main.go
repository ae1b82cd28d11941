package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	ssz "github.com/beaconkit/ssz-go"
)

type cli struct {
	Encode encodeCmd `cmd:"" help:"Encode a tagged JSON leaf value to hex."`
	Decode decodeCmd `cmd:"" help:"Decode hex wire bytes to a tagged JSON leaf value."`
}

type encodeCmd struct {
	JSON string `arg:"" optional:"" help:"Tagged JSON leaf value; reads stdin when omitted."`
}

func (c *encodeCmd) Run() error {
	input := []byte(c.JSON)
	if c.JSON == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		input = data
	}
	val, err := ssz.ValueFromJSON(input)
	if err != nil {
		return err
	}
	enc, err := ssz.Serialize(val)
	if err != nil {
		return err
	}
	fmt.Println(hex.EncodeToString(enc))
	return nil
}

type decodeCmd struct {
	Type string `required:"" help:"Leaf tag name: bool, uint8..uint256, bitlist, bytes32."`
	Hex  string `arg:"" help:"Hex-encoded wire bytes."`
}

func (c *decodeCmd) Run() error {
	tag, ok := ssz.TagFromString(strings.ToLower(c.Type))
	if !ok {
		return fmt.Errorf("unknown leaf type %q", c.Type)
	}
	raw, err := hex.DecodeString(strings.TrimPrefix(c.Hex, "0x"))
	if err != nil {
		return err
	}
	val, err := ssz.Deserialize(raw, tag)
	if err != nil {
		return err
	}
	out, err := ssz.ValueToJSON(val)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func main() {
	log.SetFlags(0)

	var args cli
	ctx := kong.Parse(&args,
		kong.Name("sszleaf"),
		kong.Description("Encode and decode state leaf values on the wire."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(); err != nil {
		log.Fatal(err)
	}
}
