package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fileferry/onedrive-provider/provider"
)

func newGetCmd() *cobra.Command {
	var (
		flagDrive  string
		flagOutput string
	)

	cmd := &cobra.Command{
		Use:   "get <item-id>",
		Short: "Download an item's content",
		Long: `Stream an item's content to stdout or to a file (-o). Without --drive the
item is resolved against the personal drive.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := resolveToken()
			if err != nil {
				return err
			}

			dl, err := buildAdapter().Download(cmd.Context(), provider.DownloadInput{
				ID:    args[0],
				Query: provider.Query{DriveID: flagDrive},
				Token: token,
			})
			if err != nil {
				return err
			}
			defer dl.Stream.Close()

			out := io.Writer(os.Stdout)

			if flagOutput != "" {
				f, createErr := os.Create(flagOutput)
				if createErr != nil {
					return fmt.Errorf("creating output file: %w", createErr)
				}
				defer f.Close()

				out = f
			}

			n, err := io.Copy(out, dl.Stream)
			if err != nil {
				return fmt.Errorf("streaming content: %w", err)
			}

			if flagOutput != "" {
				fmt.Fprintf(os.Stderr, "wrote %s to %s\n", formatSize(n), flagOutput)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&flagDrive, "drive", "", "drive ID containing the item")
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "write to file instead of stdout")

	return cmd
}

func newStatCmd() *cobra.Command {
	var flagDrive string

	cmd := &cobra.Command{
		Use:   "stat <item-id>",
		Short: "Show an item's byte size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := resolveToken()
			if err != nil {
				return err
			}

			size, err := buildAdapter().Size(cmd.Context(), provider.DownloadInput{
				ID:    args[0],
				Query: provider.Query{DriveID: flagDrive},
				Token: token,
			})
			if err != nil {
				return err
			}

			fmt.Printf("%d\t%s\n", size, formatSize(size))

			return nil
		},
	}

	cmd.Flags().StringVar(&flagDrive, "drive", "", "drive ID containing the item")

	return cmd
}
