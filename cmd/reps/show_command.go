package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/reps/internal/app"
	"github.com/five82/reps/internal/detail"
	"github.com/five82/reps/internal/exercisedb"
	"github.com/five82/reps/internal/videosearch"
)

type videoOutput struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Channel string `json:"channel,omitempty"`
	URL     string `json:"url"`
}

type showOutput struct {
	Exercise      exercisedb.Exercise   `json:"exercise"`
	Videos        []videoOutput         `json:"videos"`
	SameTarget    []exercisedb.Exercise `json:"same_target"`
	SameEquipment []exercisedb.Exercise `json:"same_equipment"`
	Degraded      []string              `json:"degraded,omitempty"`
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show one exercise with videos and similar exercises",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withRuntime(func(rt *app.Runtime) error {
				d, err := rt.Detail.Load(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if jsonOut {
					return writeJSON(cmd, toShowOutput(d))
				}
				printDetail(cmd.OutOrStdout(), d)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func toShowOutput(d detail.Detail) showOutput {
	out := showOutput{
		Exercise:      d.Exercise,
		Videos:        make([]videoOutput, 0, len(d.Videos)),
		SameTarget:    d.SameTarget,
		SameEquipment: d.SameEquipment,
		Degraded:      d.Degraded,
	}
	for _, v := range d.Videos {
		out.Videos = append(out.Videos, videoOutput{ID: v.ID, Title: v.Title, Channel: v.Channel, URL: v.URL()})
	}
	return out
}

func printDetail(w io.Writer, d detail.Detail) {
	ex := d.Exercise
	fmt.Fprintf(w, "%s (%s)\n", ex.Name, ex.ID)
	field := func(label, value string) {
		if strings.TrimSpace(value) != "" {
			fmt.Fprintf(w, "  %-12s %s\n", label+":", value)
		}
	}
	field("Body part", ex.BodyPart)
	field("Target", ex.Target)
	field("Equipment", ex.Equipment)
	field("Secondary", strings.Join(ex.SecondaryMuscles, ", "))
	field("Demo", ex.GifURL)

	if len(ex.Instructions) > 0 {
		fmt.Fprintln(w, "\nInstructions")
		for i, step := range ex.Instructions {
			fmt.Fprintf(w, "  %d. %s\n", i+1, step)
		}
	}

	degraded := func(section string) bool {
		return slices.Contains(d.Degraded, section)
	}

	fmt.Fprintln(w, "\nVideos")
	printVideos(w, d.Videos, degraded(detail.SectionVideos))
	fmt.Fprintln(w, "\nSame target")
	printRelated(w, d.SameTarget, degraded(detail.SectionSameTarget))
	fmt.Fprintln(w, "\nSame equipment")
	printRelated(w, d.SameEquipment, degraded(detail.SectionSameEquipment))
}

func printVideos(w io.Writer, videos []videosearch.Video, failed bool) {
	switch {
	case failed:
		fmt.Fprintln(w, "  unavailable")
	case len(videos) == 0:
		fmt.Fprintln(w, "  none")
	}
	for _, v := range videos {
		fmt.Fprintf(w, "  %s  %s\n", v.Title, v.URL())
	}
}

func printRelated(w io.Writer, related []exercisedb.Exercise, failed bool) {
	switch {
	case failed:
		fmt.Fprintln(w, "  unavailable")
	case len(related) == 0:
		fmt.Fprintln(w, "  none")
	}
	for _, ex := range related {
		fmt.Fprintf(w, "  %-6s %s\n", ex.ID, ex.Name)
	}
}
