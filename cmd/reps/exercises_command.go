package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/reps/internal/app"
	"github.com/five82/reps/internal/catalog"
	"github.com/five82/reps/internal/exercisedb"
	"github.com/five82/reps/internal/paginate"
)

type pageOutput struct {
	BodyPart   string                `json:"body_part"`
	Search     string                `json:"search,omitempty"`
	Page       int                   `json:"page"`
	TotalPages int                   `json:"total_pages"`
	PageSize   int                   `json:"page_size"`
	Total      int                   `json:"total"`
	Exercises  []exercisedb.Exercise `json:"exercises"`
}

func newListCommand(ctx *commandContext) *cobra.Command {
	var bodyPart string
	var page int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List exercises, optionally filtered by body part",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withRuntime(func(rt *app.Runtime) error {
				part := strings.TrimSpace(bodyPart)
				if part == "" {
					part = rt.Prefs.BodyPart
				}
				out := rt.Catalog.SetBodyPart(cmd.Context(), part)
				if out.Failure != nil {
					return fmt.Errorf("fetch exercises: %w", out.Failure)
				}
				return printPage(cmd, rt, page, jsonOut)
			})
		},
	}

	cmd.Flags().StringVarP(&bodyPart, "body-part", "b", "", "Body part filter (default: last used, or all)")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page to show (1-based)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var page int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "search TERM...",
		Short: "Search all exercises by name, muscle, equipment or body part",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := strings.Join(args, " ")
			if strings.TrimSpace(term) == "" {
				return errors.New("search term is empty")
			}
			return ctx.withRuntime(func(rt *app.Runtime) error {
				out := rt.Catalog.Search(cmd.Context(), term)
				if out.Failure != nil {
					return fmt.Errorf("search exercises: %w", out.Failure)
				}
				return printPage(cmd, rt, page, jsonOut)
			})
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page to show (1-based)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func newBodyPartsCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "body-parts",
		Short: "List the body-part filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withRuntime(func(rt *app.Runtime) error {
				res := rt.Exercises.BodyParts(cmd.Context())
				fetched, ok := res.Value()
				if !ok {
					return fmt.Errorf("fetch body parts: %w", res.Err())
				}
				parts := catalog.BodyPartChoices(fetched)
				if jsonOut {
					return writeJSON(cmd, parts)
				}
				for _, part := range parts {
					fmt.Fprintln(cmd.OutOrStdout(), part)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

// printPage writes the requested page of the controller's collection.
func printPage(cmd *cobra.Command, rt *app.Runtime, index int, jsonOut bool) error {
	rt.Catalog.SetPage(index)
	snap := rt.Catalog.Snapshot()
	page := snap.Page()

	part := snap.BodyPart
	if part == "" {
		part = catalog.AllBodyParts
	}

	if jsonOut {
		return writeJSON(cmd, pageOutput{
			BodyPart:   part,
			Search:     snap.SearchTerm,
			Page:       page.Index,
			TotalPages: page.TotalPages,
			PageSize:   page.Size,
			Total:      page.Total,
			Exercises:  page.Items,
		})
	}

	w := cmd.OutOrStdout()
	if len(page.Items) == 0 {
		fmt.Fprintln(w, "No exercises found")
		return nil
	}
	fmt.Fprint(w, renderTable(
		[]string{"#", "ID", "Name", "Target", "Equipment", "Body Part"},
		exerciseRows(page),
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
		shouldColorize(w),
	))
	if page.ShowControl() {
		fmt.Fprintf(w, "Page %d of %d (%d exercises)\n", page.Index, page.TotalPages, page.Total)
	}
	return nil
}

func exerciseRows(page paginate.Page[exercisedb.Exercise]) [][]string {
	rows := make([][]string, 0, len(page.Items))
	for i, ex := range page.Items {
		rows = append(rows, []string{
			strconv.Itoa(page.First() + i + 1),
			ex.ID,
			ex.Name,
			ex.Target,
			ex.Equipment,
			ex.BodyPart,
		})
	}
	return rows
}
