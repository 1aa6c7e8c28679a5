package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/rebind/internal/app"
	"go.trai.ch/rebind/internal/core/domain"
)

func (c *CLI) newAnnotatedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "annotated",
		Short: "List program elements carrying an annotation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reqs, err := annotatedRequests(cmd)
			if err != nil {
				return err
			}

			ws, err := c.openWorkspace(cmd)
			if err != nil {
				return err
			}

			responses, err := ws.Batch(cmd.Context(), reqs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, res := range responses {
				if len(responses) > 1 {
					_, _ = fmt.Fprintf(out, "# %s @%s\n", res.Kind, reqs[i].Annotation)
				}
				printNames(out, res.Names)
				if res.Partial {
					_, _ = fmt.Fprintf(out, "# partial: %v\n", res.StableErr)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringP("kind", "k", "type", "Element kind: type, method, field or parameter")
	cmd.Flags().StringSliceP("annotation", "a", nil, "Annotation name (repeatable)")
	cmd.Flags().StringSliceP("package", "p", nil, "Restrict results to these packages (repeatable)")
	cmd.Flags().StringP("exclude", "x", "", "Drop elements whose declaring type fully matches this pattern")
	cmd.Flags().Bool("force-stable", false, "Include the classpath sweep without a session")
	_ = cmd.MarkFlagRequired("annotation")

	return cmd
}

func annotatedRequests(cmd *cobra.Command) ([]app.Request, error) {
	flags := cmd.Flags()

	kindName, _ := flags.GetString("kind")
	kind, err := domain.ParseElementKind(kindName)
	if err != nil {
		return nil, err
	}
	annotations, _ := flags.GetStringSlice("annotation")
	exclude, _ := flags.GetString("exclude")
	forceStable, _ := flags.GetBool("force-stable")
	noSession, _ := flags.GetBool("no-session")

	// An explicit --package, even an empty one, is an allow-list.
	var packages []string
	if flags.Changed("package") {
		packages, _ = flags.GetStringSlice("package")
		if packages == nil {
			packages = []string{}
		}
	}

	reqs := make([]app.Request, 0, len(annotations))
	for _, a := range annotations {
		reqs = append(reqs, app.Request{
			Kind:        kind,
			Annotation:  a,
			Packages:    packages,
			Exclude:     exclude,
			NoSession:   noSession,
			ForceStable: forceStable,
		})
	}
	return reqs, nil
}

func printNames(w io.Writer, names []string) {
	for _, n := range names {
		_, _ = fmt.Fprintln(w, n)
	}
}
