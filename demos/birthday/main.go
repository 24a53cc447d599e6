// birthday opens a resizable window with the greeting card: pastel circles
// spelling HAPPY BIRTHDAY and a guest name fall into place and can be dragged
// around with the mouse.
//
//	birthday --name Al
//	birthday --url 'https://example.com/card?name=Al'
//	birthday grid --name Al
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/phanxgames/balloons"
	"github.com/spf13/cobra"
)

var (
	configFile string
	name       string
	pageURL    string
	rows       int
	cols       int
	width      int
	height     int
	showFPS    bool
	debug      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "birthday",
		Short: "happy birthday greeting with falling balloons",
		RunE:  runCard,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "options file (yaml)")
	rootCmd.PersistentFlags().StringVar(&name, "name", "", "guest name")
	rootCmd.PersistentFlags().StringVar(&pageURL, "url", "", "page address carrying a ?name= parameter")
	rootCmd.Flags().IntVar(&rows, "rows", balloons.DefaultRows, "circle rows")
	rootCmd.Flags().IntVar(&cols, "cols", balloons.DefaultCols, "circle columns")
	rootCmd.Flags().IntVar(&width, "width", 800, "window width")
	rootCmd.Flags().IntVar(&height, "height", 800, "window height")
	rootCmd.Flags().BoolVar(&showFPS, "fps", false, "show FPS/TPS readout")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "log lifecycle events to stderr")

	gridCmd := &cobra.Command{
		Use:   "grid",
		Short: "print the letter grid and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(cmd)
			if err != nil {
				return err
			}
			display := balloons.ResolveName(opts.Name, opts.PageURL, opts.Placeholder)
			fmt.Fprintln(cmd.OutOrStdout(), balloons.GenerateGrid(display))
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective options as yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(cmd)
			if err != nil {
				return err
			}
			return balloons.WriteOptions(cmd.OutOrStdout(), opts)
		},
	}

	rootCmd.AddCommand(gridCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadOptions layers the config file, if any, over the defaults and then the
// flags the user actually set over that.
func loadOptions(cmd *cobra.Command) (balloons.Options, error) {
	opts := balloons.DefaultOptions()
	if configFile != "" {
		loaded, err := balloons.LoadOptions(configFile)
		if err != nil {
			return opts, err
		}
		opts = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("name") {
		opts.Name = name
	}
	if flags.Changed("url") {
		opts.PageURL = pageURL
	}
	if flags.Changed("rows") {
		opts.Rows = rows
	}
	if flags.Changed("cols") {
		opts.Cols = cols
	}
	if flags.Changed("debug") {
		opts.Debug = debug
	}
	return opts, opts.Validate()
}

func runCard(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}
	if err := balloons.Run(opts, balloons.RunConfig{
		Title:   "Happy Birthday",
		Width:   width,
		Height:  height,
		ShowFPS: showFPS,
	}); err != nil {
		log.Fatalf("birthday: %v", err)
	}
	return nil
}
