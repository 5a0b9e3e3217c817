package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/altindan/internal/server"
	"github.com/shashiranjanraj/altindan/internal/web"
)

// altindan serve — start the web server and, when configured, the bot.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server and the Telegram bot",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Run()
	},
}

// altindan route:list — print all registered named routes.
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered named routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := server.Build()
		if err != nil {
			return err
		}

		r := web.NewServer(app.Catalog, app.Store, app.Intake, app.Settings).Routes()
		infos := r.Routes()

		sort.Slice(infos, func(i, j int) bool {
			if infos[i].Path != infos[j].Path {
				return infos[i].Path < infos[j].Path
			}
			return infos[i].Method < infos[j].Method
		})

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		fmt.Fprintln(w, "------\t----\t----")
		for _, ri := range infos {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
		}
		return w.Flush()
	},
}
