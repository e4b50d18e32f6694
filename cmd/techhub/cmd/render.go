package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/nfrund/techhub/internal/content"
	"github.com/nfrund/techhub/internal/export"
	"github.com/nfrund/techhub/internal/rendering"
)

type renderOptions struct {
	dark        bool
	menuOpen    bool
	out         string
	contentPath string
}

func newRenderCmd(fs afero.Fs) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the page as a standalone HTML file",
		Long: `Renders the landing page without a server. The exported page keeps its
theme and menu state in the browser; nothing is sent anywhere.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(opts.contentPath)
			if err != nil {
				return err
			}

			x := export.New(fs, rendering.NewUniversalRenderer())
			return x.WriteFile(cmd.Context(), opts.out, cat, export.Options{
				Dark:     opts.dark,
				MenuOpen: opts.menuOpen,
			})
		},
	}

	cmd.Flags().BoolVar(&opts.dark, "dark", false, "render with the dark palette")
	cmd.Flags().BoolVar(&opts.menuOpen, "menu-open", false, "render with the mobile menu open")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "techhub.html", "output file")
	cmd.Flags().StringVar(&opts.contentPath, "content", "", "content catalog YAML (default: built-in)")

	return cmd
}

func loadCatalog(path string) (*content.Catalog, error) {
	if path == "" {
		return content.Embedded()
	}
	return content.LoadFile(path)
}

func init() {
	rootCmd.AddCommand(newRenderCmd(afero.NewOsFs()))
}
