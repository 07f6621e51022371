package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/barcodec/aztec"
	"github.com/barcodec/aztec/render"
)

func main() {
	data := flag.String("data", "", "payload to encode; reads stdin when empty")
	ec := flag.Float64("ec", aztec.DefaultErrorCorrection, "minimum check-codeword share")
	minLayers := flag.Int("layers", 1, "minimum layer count")
	form := flag.String("compact", "auto", "symbol family: auto, true or false")
	format := flag.String("format", "text", "output format: text, svg or png")
	scale := flag.Int("scale", 4, "pixels per module for svg/png")
	out := flag.String("o", "", "output file; stdout when empty")
	invert := flag.Bool("invert", false, "invert text output for dark terminals")
	flag.Parse()

	payload := []byte(*data)
	if *data == "" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			fatalf("read stdin: %v", err)
		}
		payload = b
	}

	opts := aztec.Options{ErrorCorrection: *ec, MinLayers: *minLayers}
	switch *form {
	case "auto":
	case "true":
		opts.Form = aztec.FormCompact
	case "false":
		opts.Form = aztec.FormFull
	default:
		fatalf("bad -compact %q; use auto, true or false", *form)
	}

	code, err := aztec.Encode(payload, opts)
	if err != nil {
		fatalf("encode: %v", err)
	}

	w := io.Writer(os.Stdout)
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fatalf("create %s: %v", *out, err)
		}
		defer f.Close()
		w = f
	}

	switch *format {
	case "text":
		if *invert {
			fmt.Fprint(w, render.TextInverted(code))
		} else {
			fmt.Fprint(w, render.Text(code))
		}
	case "svg":
		fmt.Fprint(w, render.SVG(code, *scale))
	case "png":
		if err := render.PNG(w, code, *scale); err != nil {
			fatalf("png: %v", err)
		}
	default:
		fatalf("bad -format %q; use text, svg or png", *format)
	}

	family := "full"
	if code.Compact {
		family = "compact"
	}
	fmt.Fprintf(os.Stderr, "aztec: %s, %d layers, %dx%d modules, %d data codewords\n",
		family, code.Layers, code.Size, code.Size, code.DataCodewords)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "aztec: "+format+"\n", args...)
	os.Exit(1)
}
