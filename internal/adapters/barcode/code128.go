// internal/adapters/barcode/code128.go
package barcode

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"image/png"
	"log/slog"
	"path"
	"regexp"
	"strings"

	bc "github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"

	"github.com/ammerola/shopstock-be/internal/core/domain"
	"github.com/ammerola/shopstock-be/internal/core/ports"
)

const (
	barHeight   = 80
	moduleWidth = 2
	imageWidth  = 400
)

var unsafePathChars = regexp.MustCompile(`[/\\?%*:|"<>.,;=]`)

// Generator encodes product/variant pairs as Code 128 barcodes and
// writes PNG images through the file store.
type Generator struct {
	store  ports.FileStore
	logger *slog.Logger
}

// Statically assert that *Generator implements the BarcodeGenerator interface.
var _ ports.BarcodeGenerator = (*Generator)(nil)

// NewGenerator creates a new barcode generator
func NewGenerator(store ports.FileStore, logger *slog.Logger) *Generator {
	return &Generator{
		store:  store,
		logger: logger.With(slog.String("component", "barcode")),
	}
}

// Generate encodes the product/variant pair, writes the PNG image and
// returns the code, raw payload and image path. The image write is
// best effort; an unwritable disk does not fail variant creation.
func (g *Generator) Generate(ctx context.Context, productName, variantHandle string) (*ports.GeneratedBarcode, error) {
	code := BuildCode(productName, variantHandle)

	encoded, err := code128.Encode(code)
	if err != nil {
		return nil, fmt.Errorf("failed to encode barcode %q: %w", code, err)
	}

	relPath := path.Join("barcodes", SanitizePathSegment(productName), SanitizePathSegment(variantHandle), "barcode.png")

	result := &ports.GeneratedBarcode{
		Code: code,
		Payload: domain.BarcodePayload{
			Height:   barHeight,
			XDim:     moduleWidth,
			Encoding: extractModules(encoded),
		},
		FilePath: relPath,
	}

	data, err := renderPNG(encoded)
	if err != nil {
		g.logger.WarnContext(ctx, "failed to render barcode image",
			"err", err,
			slog.String("code", code))
		return result, nil
	}

	fullPath, err := g.store.SavePNG(ctx, relPath, data)
	if err != nil {
		g.logger.WarnContext(ctx, "failed to save barcode image",
			"err", err,
			slog.String("path", relPath))
		return result, nil
	}

	result.FilePath = fullPath
	return result, nil
}

// BuildCode derives the encodable barcode value from a product name
// and variant handle: uppercased, spaces stripped, joined with a dash.
func BuildCode(productName, variantHandle string) string {
	product := strings.ToUpper(strings.ReplaceAll(productName, " ", ""))
	handle := strings.ToUpper(strings.ReplaceAll(variantHandle, " ", ""))
	return product + "-" + handle
}

// SanitizePathSegment makes a name safe to use as a directory name:
// unsafe characters become dashes, spaces become underscores, and the
// result is uppercased.
func SanitizePathSegment(name string) string {
	s := unsafePathChars.ReplaceAllString(name, "-")
	s = strings.ReplaceAll(s, " ", "_")
	return strings.ToUpper(s)
}

// extractModules reads the unscaled barcode left to right, one int per
// module, 1 for bar and 0 for space.
func extractModules(encoded bc.BarcodeIntCS) []int {
	bounds := encoded.Bounds()
	modules := make([]int, 0, bounds.Dx())
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		c := color.GrayModel.Convert(encoded.At(x, bounds.Min.Y)).(color.Gray)
		if c.Y < 128 {
			modules = append(modules, 1)
		} else {
			modules = append(modules, 0)
		}
	}
	return modules
}

func renderPNG(encoded bc.BarcodeIntCS) ([]byte, error) {
	scaled, err := bc.Scale(encoded, imageWidth, barHeight)
	if err != nil {
		return nil, fmt.Errorf("failed to scale barcode: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}
