// variant - convert and inspect variant documents
//
// Usage:
//
//	variant convert --from json --to cbor [file]   Convert between formats
//	variant digest --from json [file]              Print the BLAKE3 content ID
//
// Formats: json, yaml, cbor, frame (zstd-compressed CBOR).
// If no file is given, reads from stdin.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/Neumenon/variant/codec"
	"github.com/Neumenon/variant/variant"
)

const version = "0.1.0"

func main() {
	app := &cli.App{
		Name:    "variant",
		Usage:   "convert and inspect variant documents",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:      "convert",
				Usage:     "convert a document between formats",
				ArgsUsage: "[file]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "from", Value: "json", Usage: "input format: json, yaml, cbor, frame"},
					&cli.StringFlag{Name: "to", Value: "json", Usage: "output format: json, yaml, cbor, frame"},
					&cli.BoolFlag{Name: "jsonc", Usage: "allow comments and trailing commas in JSON input"},
				},
				Action: convertAction,
			},
			{
				Name:      "digest",
				Usage:     "print the BLAKE3 content ID of a document",
				ArgsUsage: "[file]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "from", Value: "json", Usage: "input format: json, yaml, cbor, frame"},
					&cli.BoolFlag{Name: "jsonc", Usage: "allow comments and trailing commas in JSON input"},
				},
				Action: digestAction,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "variant:", err)
		os.Exit(1)
	}
}

func convertAction(c *cli.Context) error {
	v, err := readAndDecode(c)
	if err != nil {
		return err
	}
	out, err := encode(c.String("to"), v)
	if err != nil {
		return err
	}
	if _, err := os.Stdout.Write(out); err != nil {
		return err
	}
	if c.String("to") == "json" {
		fmt.Println()
	}
	return nil
}

func digestAction(c *cli.Context) error {
	v, err := readAndDecode(c)
	if err != nil {
		return err
	}
	cid, err := codec.DigestString(v)
	if err != nil {
		return err
	}
	fmt.Println(cid)
	return nil
}

func readAndDecode(c *cli.Context) (variant.Value, error) {
	data, err := readInput(c)
	if err != nil {
		return variant.Null(), err
	}
	return decode(c.String("from"), data, c.Bool("jsonc"))
}

func readInput(c *cli.Context) ([]byte, error) {
	if name := c.Args().First(); name != "" && name != "-" {
		return os.ReadFile(name)
	}
	return io.ReadAll(os.Stdin)
}

func decode(format string, data []byte, allowComments bool) (variant.Value, error) {
	switch format {
	case "json":
		return codec.DecodeJSONWithOptions(data, codec.JSONDecodeOptions{AllowComments: allowComments})
	case "yaml":
		return codec.DecodeYAML(data)
	case "cbor":
		return codec.DecodeCBOR(data)
	case "frame":
		return codec.DecodeFrame(data)
	default:
		return variant.Null(), fmt.Errorf("unknown input format %q", format)
	}
}

func encode(format string, v variant.Value) ([]byte, error) {
	switch format {
	case "json":
		return codec.EncodeJSON(v)
	case "yaml":
		return codec.EncodeYAML(v)
	case "cbor":
		return codec.EncodeCBOR(v)
	case "frame":
		return codec.EncodeFrame(v)
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
