package cmd

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cocosip/go-mdct-codec/mdct"
	"github.com/cocosip/go-mdct-codec/mdct/transform"
)

// NewRoundtripCmd creates the roundtrip cobra command: encode an image to a
// wire container file, or decode a container back to PNG.
func NewRoundtripCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roundtrip",
		Short: "Encode an image to a coefficient container, or decode one back",
		RunE: func(cmd *cobra.Command, args []string) error {
			inPath, _ := cmd.Flags().GetString("file")
			outPath, _ := cmd.Flags().GetString("out")
			quality, _ := cmd.Flags().GetFloat64("quality")
			methodName, _ := cmd.Flags().GetString("transform")

			if inPath == "" && len(args) > 0 {
				inPath = args[0]
			}
			if inPath == "" {
				return fmt.Errorf("file path is required. Use --file flag or provide as argument")
			}

			if strings.HasSuffix(inPath, ".mdct") {
				return runDecode(inPath, outPath)
			}
			return runEncode(inPath, outPath, quality, methodName)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringP("file", "f", "", "Input path (.png/.jpg to encode, .mdct to decode)")
	pf.StringP("out", "o", "", "Output path")
	pf.Float64P("quality", "q", 1.0, "Quality factor (1.0-8.0, lower is finer)")
	pf.StringP("transform", "t", "fast", "Transform method (fast, matrix, approx, identity)")

	return cmd
}

func runEncode(inPath, outPath string, quality float64, methodName string) error {
	method, err := transform.ParseMethod(methodName)
	if err != nil {
		return err
	}
	if outPath == "" {
		outPath = inPath + ".mdct"
	}

	img, err := loadRGB(inPath)
	if err != nil {
		return err
	}

	params := mdct.NewParameters().WithQualityFactor(quality).WithTransform(method)
	comp, err := mdct.Compress(img, params)
	if err != nil {
		return err
	}
	defer comp.Release()

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := mdct.WriteCompressed(out, comp); err != nil {
		return err
	}

	slog.Info("encoded", "in", inPath, "out", outPath,
		"tiles", comp.NumTiles, "transform", comp.Transform.String())
	return nil
}

func runDecode(inPath, outPath string) error {
	if outPath == "" {
		outPath = strings.TrimSuffix(inPath, ".mdct") + ".out.png"
	}

	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	comp, err := mdct.ReadCompressed(in)
	if err != nil {
		return err
	}
	defer comp.Release()

	img, err := mdct.Decompress(comp)
	if err != nil {
		return err
	}
	defer img.Release()

	dst := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for i := 0; i < img.Width*img.Height; i++ {
		dst.Pix[i*4] = img.Data[i*3]
		dst.Pix[i*4+1] = img.Data[i*3+1]
		dst.Pix[i*4+2] = img.Data[i*3+2]
		dst.Pix[i*4+3] = 255
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := png.Encode(out, dst); err != nil {
		return err
	}

	slog.Info("decoded", "in", inPath, "out", outPath,
		"width", img.Width, "height", img.Height)
	return nil
}
