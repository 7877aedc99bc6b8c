package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/capfs/pkg/capfs/virtual"
)

// walkTo descends from the cap to the directory named by a virtual path.
func walkTo(root *virtual.Directory, virtualPath string) *virtual.Directory {
	trimmed := strings.Trim(virtualPath, "/")
	if trimmed == "" {
		return root
	}
	return root.GetDirectory(trimmed)
}

func newLsCommand() *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "ls [path]",
		Short: "List the direct children of a directory in the capped view",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := capView()
			if len(args) == 1 {
				dir = walkTo(dir, args[0])
			}
			logger.Debug().Str("virtual", dir.VirtualPath()).Str("real", dir.RealPath()).Msg("listing directory")
			listing, err := dir.Read(pattern)
			if err != nil {
				return err
			}
			for _, sub := range listing.Directories {
				fmt.Fprintf(cmd.OutOrStdout(), "%s/\n", sub.VirtualPath())
			}
			for _, file := range listing.Files {
				fmt.Fprintln(cmd.OutOrStdout(), file.VirtualPath())
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "glob pattern scoped to the immediate directory")
	return cmd
}

func newFindCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "find <pattern> [path]",
		Short: "Recursively match entries below a directory in the capped view",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := capView()
			if len(args) == 2 {
				dir = walkTo(dir, args[1])
			}
			listing, err := dir.Glob(args[0])
			if err != nil {
				return err
			}
			for _, sub := range listing.Directories {
				fmt.Fprintf(cmd.OutOrStdout(), "%s/\n", sub.VirtualPath())
			}
			for _, file := range listing.Files {
				fmt.Fprintln(cmd.OutOrStdout(), file.VirtualPath())
			}
			return nil
		},
	}
}

func newStatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stat <file>",
		Short: "Print the resolved coordinates and probes of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := capView().GetFile(strings.TrimPrefix(args[0], "/"))
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "virtual:  %s\n", file.VirtualPath())
			fmt.Fprintf(out, "real:     %s\n", file.RealPath())
			fmt.Fprintf(out, "locator:  %s\n", file.Real().Locator())
			fmt.Fprintf(out, "name:     %s (stem %q, ext %q)\n", file.Name(), file.Real().Stem(), file.Real().Ext())
			fmt.Fprintf(out, "exists:   %v\n", file.Exists())
			if size, ok := file.Size(); ok {
				fmt.Fprintf(out, "size:     %d\n", size)
			}
			if modified, ok := file.Modified(); ok {
				fmt.Fprintf(out, "modified: %s\n", modified.Format("2006-01-02 15:04:05"))
			}
			fmt.Fprintf(out, "readable: %v writable: %v\n", file.CanRead(), file.CanWrite())
			return nil
		},
	}
}
