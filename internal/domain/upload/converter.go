package upload

import (
	"context"
	"fmt"
	"os/exec"
	"time"
)

// Converter turns an office document into a PDF placed next to it.
// Failure must stay behind this boundary: callers treat it as
// "no preview", never as a request failure.
type Converter interface {
	ToPDF(ctx context.Context, inputPath, outDir string) error
}

// SofficeConverter shells out to LibreOffice. The timeout bounds a hung
// converter process so it cannot hang the request.
type SofficeConverter struct {
	Bin     string
	Timeout time.Duration
}

func NewSofficeConverter(bin string, timeout time.Duration) *SofficeConverter {
	if bin == "" {
		bin = "soffice"
	}
	return &SofficeConverter{Bin: bin, Timeout: timeout}
}

func (c *SofficeConverter) ToPDF(ctx context.Context, inputPath, outDir string) error {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.Bin, "--headless", "--convert-to", "pdf", "--outdir", outDir, inputPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s convert failed: %w (output: %s)", c.Bin, err, out)
	}
	return nil
}
