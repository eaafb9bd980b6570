package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fileferry/onedrive-provider/onedrive"
	"github.com/fileferry/onedrive-provider/provider"
)

func newLsCmd() *cobra.Command {
	var (
		flagDrive  string
		flagCursor string
		flagSites  bool
	)

	cmd := &cobra.Command{
		Use:   "ls [directory]",
		Short: "List drives, SharePoint site drives, or folder contents",
		Long: `List the authenticated user's drives (no arguments and no --drive),
all SharePoint site drives (--sites), or a folder's children (--drive plus an
optional directory item ID; omit the directory for the drive root).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := resolveToken()
			if err != nil {
				return err
			}

			directory := ""
			if len(args) == 1 {
				directory = args[0]
			}

			driveID := flagDrive
			if flagSites {
				driveID = onedrive.SharePointSitesID
			}

			listing, err := buildAdapter().List(cmd.Context(), provider.ListInput{
				Directory: directory,
				Query: provider.Query{
					DriveID: driveID,
					Cursor:  flagCursor,
				},
				Token: token,
			})
			if err != nil {
				return err
			}

			return printListing(listing)
		},
	}

	cmd.Flags().StringVar(&flagDrive, "drive", "", "drive ID to list within")
	cmd.Flags().StringVar(&flagCursor, "cursor", "", "pagination cursor from a previous page")
	cmd.Flags().BoolVar(&flagSites, "sites", false, "list all SharePoint site drives")

	return cmd
}

// printListing renders a listing as JSON (--json or piped output) or as an
// aligned table on a terminal.
func printListing(listing *provider.Listing) error {
	if flagJSON || !stdoutIsTTY() {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")

		return enc.Encode(listing)
	}

	rows := make([][]string, 0, len(listing.Items))

	for i := range listing.Items {
		item := &listing.Items[i]

		kind := "file"
		if item.IsFolder {
			kind = "folder"
		}

		rows = append(rows, []string{
			item.Name,
			kind,
			formatSize(item.Size),
			formatTime(item.ModifiedAt),
			item.ID,
		})
	}

	fmt.Printf("%s\n\n", listing.Username)
	printTable(os.Stdout, []string{"NAME", "TYPE", "SIZE", "MODIFIED", "ID"}, rows)

	if listing.NextPagePath != "" {
		fmt.Printf("\nnext page: %s\n", listing.NextPagePath)
	}

	return nil
}
