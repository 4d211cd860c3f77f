package cmd

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/cocosip/go-mdct-codec/mdct"
	"github.com/cocosip/go-mdct-codec/mdct/metrics"
	"github.com/cocosip/go-mdct-codec/mdct/transform"
)

// NewCompareCmd creates the compare cobra command: run every transform over
// one input image and report PSNR and the bitrate proxy per method.
func NewCompareCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the four block transforms on one image",
		Long:  "Compresses and reconstructs the input with each transform at the given quality factor, reporting PSNR and the per-tile bitrate proxy.",
		RunE: func(cmd *cobra.Command, args []string) error {
			filePath, _ := cmd.Flags().GetString("file")
			quality, _ := cmd.Flags().GetFloat64("quality")
			skipQuant, _ := cmd.Flags().GetBool("skip-quantization")

			if filePath == "" && len(args) > 0 {
				filePath = args[0]
			}
			if filePath == "" {
				return fmt.Errorf("file path is required. Use --file flag or provide as argument")
			}

			return runCompare(filePath, quality, skipQuant)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringP("file", "f", "", "Input image path (PNG or JPEG)")
	pf.Float64P("quality", "q", 1.0, "Quality factor (1.0-8.0, lower is finer)")
	pf.Bool("skip-quantization", false, "Pass transform coefficients through unquantized")

	return cmd
}

func runCompare(filePath string, quality float64, skipQuant bool) error {
	img, err := loadRGB(filePath)
	if err != nil {
		return err
	}

	fmt.Printf("%-10s | %10s | %10s\n", "Method", "PSNR (dB)", "Bitrate")
	fmt.Println("-----------|------------|-----------")

	for _, m := range []transform.Method{
		transform.Fast, transform.Matrix, transform.Approx, transform.Identity,
	} {
		params := mdct.NewParameters().WithQualityFactor(quality).WithTransform(m)
		params.SkipQuantization = skipQuant

		comp, err := mdct.Compress(img, params)
		if err != nil {
			return fmt.Errorf("%s: compress: %w", m, err)
		}

		recon, err := mdct.Decompress(comp)
		if err != nil {
			comp.Release()
			return fmt.Errorf("%s: decompress: %w", m, err)
		}

		psnr := metrics.PSNR(img.Data, recon.Data)
		bitrate := metrics.Bitrate(comp.YQuant, comp.CbQuant, comp.CrQuant)
		fmt.Printf("%-10s | %10.2f | %10.4f\n", m, psnr, bitrate)

		recon.Release()
		comp.Release()
	}

	return nil
}

// loadRGB decodes a PNG or JPEG file into the codec's interleaved RGB layout.
func loadRGB(path string) (*mdct.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	bounds := src.Bounds()
	out := mdct.NewRGBImage(bounds.Dx(), bounds.Dy())
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := src.At(x, y).RGBA()
			out.Data[i] = uint8(r >> 8)
			out.Data[i+1] = uint8(g >> 8)
			out.Data[i+2] = uint8(b >> 8)
			i += 3
		}
	}
	return out, nil
}
