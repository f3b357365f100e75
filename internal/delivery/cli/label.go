package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"inventory/internal/domain/entity"
	"inventory/internal/infra/qrcode"
	"inventory/internal/util"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newLabelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "label",
		Short: "Generate or decode product QR labels",
	}
	cmd.AddCommand(newLabelGenerateCmd())
	cmd.AddCommand(newLabelDecodeCmd())

	return cmd
}

func newLabelGenerateCmd() *cobra.Command {
	var (
		outDir  string
		size    int
		level   string
		baseURL string
	)

	cmd := &cobra.Command{
		Use:   "generate <drafts.yaml>",
		Short: "Write a PNG label for every product that has an ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := loadDrafts(args[0])
			if err != nil {
				return err
			}

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return errors.Wrapf(err, "creating %s", outDir)
			}

			labels := qrcode.NewLabelService(size, level, baseURL)
			written := 0
			for _, entry := range entries {
				if entry.ID == "" {
					fmt.Fprintln(cmd.OutOrStdout(), renderSkipped(entry.Name, "no product id"))

					continue
				}

				png, err := labels.GenerateProductLabel(&entity.Product{ID: entry.ID, SKU: entry.SKU})
				if err != nil {
					return errors.Wrapf(err, "label for %s", entry.ID)
				}

				target := filepath.Join(outDir, labelFileName(entry)+".png")
				if err := os.WriteFile(target, png, 0o644); err != nil {
					return errors.Wrapf(err, "writing %s", target)
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderWritten(target, util.FormatBytes(int64(len(png)))))
				written++
			}

			if written == 0 {
				return errors.New("no labels written: products need an id")
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "labels", "Directory the PNG files are written to")
	cmd.Flags().IntVar(&size, "size", 256, "Label size in pixels")
	cmd.Flags().StringVar(&level, "level", "medium", "Error correction level: low, medium, high or highest")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Console URL encoded into the label")

	return cmd
}

// labelFileName prefers the SKU, which is what is printed on the shelf.
func labelFileName(entry draftEntry) string {
	if entry.SKU != "" {
		return filepath.Base(entry.SKU)
	}

	return entry.ID
}

func newLabelDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <scanned content>",
		Short: "Print the product ID encoded in a scanned label",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := qrcode.NewLabelService(0, "", "").ParseProductLabel(args[0])
			if err != nil {
				return errors.WithStack(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), productID)

			return nil
		},
	}
}
