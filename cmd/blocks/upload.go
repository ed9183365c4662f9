package main

import (
	"context"
	"fmt"
	"io"
	"os"

	blocksfs "github.com/fwojciec/blocks/fs"
	"go.uber.org/zap"
)

// upload writes the data URL of the image at path to w. For a directory,
// every image under it is written as "<path>\t<data URL>", one per line.
// Each file is judged by the uploader, so files it rejects are logged.
func upload(ctx context.Context, w io.Writer, path string, logger *zap.Logger) error {
	u := &blocksfs.ImageUploader{}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("upload: %w", err)
	}
	if !info.IsDir() {
		url, err := u.AcceptPath(ctx, path)
		if err != nil {
			return fmt.Errorf("upload: %w", err)
		}
		_, err = fmt.Fprintln(w, url)
		return err
	}

	paths, err := blocksfs.Glob(path, "**/*")
	if err != nil {
		return fmt.Errorf("upload: %w", err)
	}
	for _, p := range paths {
		url, err := u.AcceptPath(ctx, p)
		if err != nil {
			logger.Warn("skipped file", zap.String("path", p), zap.Error(err))
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", p, url); err != nil {
			return err
		}
	}
	return nil
}
