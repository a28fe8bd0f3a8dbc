//go:build js && wasm

package main

import (
	"syscall/js"

	mc "mastcamraw/pkg/mastcamraw"
)

func main() {
	js.Global().Set("processMosaic", js.FuncOf(processMosaic))
	select {} // block forever
}

// processMosaic runs the full colour pipeline on raw mosaic bytes passed
// from the browser and returns RGBA pixels ready for a canvas ImageData.
//
//	processMosaic(rawBytes, width, height, {bayer: "grbg"})
func processMosaic(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return errorResult("usage: processMosaic(rawBytes, width, height, options)")
	}

	jsBytes := args[0]
	length := jsBytes.Get("length").Int()
	raw := make([]byte, length)
	js.CopyBytesToGo(raw, jsBytes)

	width := args[1].Int()
	height := args[2].Int()

	pattern := mc.DefaultPattern
	if len(args) >= 4 && args[3].Type() == js.TypeObject {
		bayerVal := args[3].Get("bayer")
		if bayerVal.Type() == js.TypeString {
			p, err := mc.ParseBayerPattern(bayerVal.String())
			if err != nil {
				return errorResult(err.Error())
			}
			pattern = p
		}
	}

	frame, err := mc.NewMosaicFrame(raw, width, height)
	if err != nil {
		return errorResult(err.Error())
	}

	raster, err := mc.Process(frame, pattern, mc.DefaultOptions())
	if err != nil {
		return errorResult(err.Error())
	}
	img := raster.ToRGBA()

	rgba := js.Global().Get("Uint8ClampedArray").New(len(img.Pix))
	js.CopyBytesToJS(rgba, img.Pix)

	return js.ValueOf(map[string]interface{}{
		"width":  width,
		"height": height,
		"rgba":   rgba,
	})
}

func errorResult(msg string) interface{} {
	return js.ValueOf(map[string]interface{}{
		"error": msg,
	})
}
