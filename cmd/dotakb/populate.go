package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ersonp/dota2-ontology/internal/application/handlers"
)

// pathFlags overrides configured input and output paths.
type pathFlags struct {
	heroes      string
	heroDetails string
	items       string
	abilities   string
	ontology    string
	facts       string
}

func (f *pathFlags) addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.heroes, "heroes", "", "Hero export (default: heroes.json)")
	cmd.Flags().StringVar(&f.heroDetails, "hero-details", "", "Hero ability export (default: hero_abilities.json)")
	cmd.Flags().StringVar(&f.items, "items", "", "Item export (default: items.json)")
	cmd.Flags().StringVar(&f.abilities, "abilities", "", "Ability export (default: abilities.json)")
}

// apply overlays the non-empty flags on the configured paths.
func (f *pathFlags) apply(d *Deps) {
	paths := &d.Config.Paths
	for _, o := range []struct {
		flag string
		dest *string
	}{
		{f.heroes, &paths.Heroes},
		{f.heroDetails, &paths.HeroDetails},
		{f.items, &paths.Items},
		{f.abilities, &paths.Abilities},
		{f.ontology, &paths.Ontology},
		{f.facts, &paths.Facts},
	} {
		if o.flag != "" {
			*o.dest = o.flag
		}
	}
}

func newPopulateCmd(opts *globalOptions) *cobra.Command {
	var flags pathFlags

	cmd := &cobra.Command{
		Use:   "populate",
		Short: "Build the ontology from the JSON data exports",
		Long: `Reads heroes.json, hero_abilities.json, items.json and abilities.json,
populates the Dota 2 ontology and saves it as RDF/XML (dota2_ontology.owl).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd, opts, func(d *Deps) error {
				flags.apply(d)
				result, err := d.PopulateHandler.Handle(cmd.Context(), populateRequest(d))
				if err != nil {
					return err
				}
				printPopulateResult(d.Out, result)
				return nil
			})
		},
	}

	flags.addSourceFlags(cmd)
	cmd.Flags().StringVarP(&flags.ontology, "output", "o", "", "Ontology output (default: dota2_ontology.owl)")

	return cmd
}

func populateRequest(d *Deps) handlers.PopulateRequest {
	return handlers.PopulateRequest{
		Namespace: d.Config.Namespace,
		Sources:   d.Sources(),
		Output:    d.Path(d.Config.Paths.Ontology),
	}
}

func printPopulateResult(w io.Writer, r *handlers.PopulateResult) {
	fmt.Fprintf(w, "Heroes:      %d (%d abilities, %d talents, %d facets)\n", r.Heroes, r.HeroAbilities, r.Talents, r.Facets)
	fmt.Fprintf(w, "Items:       %d\n", r.Items)
	fmt.Fprintf(w, "Abilities:   %d created, %d updated\n", r.AbilitiesCreated, r.AbilitiesUpdated)
	fmt.Fprintf(w, "Fixtures:    %d\n", r.Fixtures)
	fmt.Fprintf(w, "Individuals: %d\n", r.Individuals)
	fmt.Fprintf(w, "Ontology saved to %s\n", r.OutputPath)
}
