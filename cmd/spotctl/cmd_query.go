package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"spot-guide/models"
	"spot-guide/services"
)

var (
	filterText string
	filterTags []string
	filterJSON bool
)

// schemaCmd zeigt die gewählte Spalte je Rolle
var schemaCmd = &cobra.Command{
	Use:   "schema <file>",
	Short: "Show the resolved column for each field role",
	Args:  cobra.ExactArgs(1),
	RunE:  runSchema,
}

// tagsCmd gibt das Tag-Vokabular aus
var tagsCmd = &cobra.Command{
	Use:   "tags <file>",
	Short: "List every distinct tag, sorted",
	Args:  cobra.ExactArgs(1),
	RunE:  runTags,
}

// filterCmd gibt die passenden Spots aus
var filterCmd = &cobra.Command{
	Use:   "filter <file>",
	Short: "Filter spots by name text and tags",
	Long: `Filter spots by name text and tags.

Text matches case-insensitively anywhere in the name. Selecting several tags
keeps spots carrying any of them; text and tags must both match.`,
	Args: cobra.ExactArgs(1),
	RunE: runFilter,
}

func runSchema(cmd *cobra.Command, args []string) error {
	table, schema, _, err := loadSpots(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "columns: %s\n", strings.Join(table.Columns, ", "))
	for _, role := range models.AllRoles {
		col, ok := schema.Lookup(role)
		if !ok {
			fmt.Fprintf(out, "%-12s -\n", role)
			continue
		}
		fmt.Fprintf(out, "%-12s %s (#%d)\n", role, col.Label, col.Index)
	}
	return nil
}

func runTags(cmd *cobra.Command, args []string) error {
	_, _, spots, err := loadSpots(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	for _, tag := range services.BuildVocabulary(spots) {
		fmt.Fprintln(cmd.OutOrStdout(), tag)
	}
	return nil
}

func runFilter(cmd *cobra.Command, args []string) error {
	_, _, spots, err := loadSpots(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	matches := services.Filter(spots, models.NewFilterQuery(filterText, filterTags...))

	out := cmd.OutOrStdout()
	if filterJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(matches)
	}
	for _, s := range matches {
		fmt.Fprintf(out, "%s\n", s.Name)
		if s.Address != "" {
			fmt.Fprintf(out, "  %s\n", s.Address)
		}
		if len(s.Tags) > 0 {
			fmt.Fprintf(out, "  [%s]\n", strings.Join(s.Tags.Sorted(), ", "))
		}
		if u := services.MapsURL(s); u != "" {
			fmt.Fprintf(out, "  %s\n", u)
		}
	}
	fmt.Fprintf(out, "%d/%d spots\n", len(matches), len(spots))
	return nil
}
