package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/dota2-ontology/internal/domain/entities"
	"github.com/ersonp/dota2-ontology/internal/domain/services"
)

func newDescribeCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <name>",
		Short: "Show a catalog entity with its values and links",
		Long:  "Looks up an individual by IRI fragment (npc_dota_hero_antimage) or fact name (antimage).",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCatalog(cmd, opts, func(d *CatalogDeps) error {
				details, err := d.DescribeHandler.Handle(cmd.Context(), args[0])
				if errors.Is(err, services.ErrEntityNotFound) {
					return fmt.Errorf("%w (run 'dotakb store' first?)", err)
				}
				if err != nil {
					return err
				}
				printEntityDetails(d.Out, details)
				return nil
			})
		},
	}
}

func printEntityDetails(w io.Writer, details *services.EntityDetails) {
	e := details.Entity
	classes := make([]string, len(e.Classes))
	for i, c := range e.Classes {
		classes[i] = string(c)
	}

	fmt.Fprintf(w, "%s (%s)\n", e.Name, e.NormalizedName)
	fmt.Fprintf(w, "  Classes: %s\n", strings.Join(classes, ", "))

	if len(details.Attributes) > 0 {
		fmt.Fprintln(w, "  Values:")
		for _, a := range details.Attributes {
			fmt.Fprintf(w, "    %s = %s\n", a.Property, a.Value)
		}
	}

	if len(details.Relationships) > 0 {
		fmt.Fprintln(w, "  Links:")
		for _, r := range details.Relationships {
			fmt.Fprintf(w, "    %s -> %s\n", r.Type, targetName(details, r))
		}
	}
}

func targetName(details *services.EntityDetails, r entities.Relationship) string {
	if name, ok := details.Targets[r.TargetEntityID]; ok {
		return name
	}
	return r.TargetEntityID
}
