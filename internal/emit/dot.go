package emit

import (
	"fmt"
	"io"
	"strings"

	"github.com/stylescan/stylescan/domain"
)

// emitDOT renders the BEM relationship graph and the cluster forest as a
// single Graphviz digraph: one subgraph of BEM component nodes connected by
// their relationship edges, and one subgraph holding every cluster node with
// an edge from each cluster to each of its children. Each cluster node's label lists at most its first
// three properties — a plain, truncated join, not a delimiter-joined
// expansion that could be mistaken for spread syntax.
func emitDOT(result *domain.AnalysisResult, w io.Writer) error {
	if result == nil {
		return domain.NewOutputError("dot emit requires an analysis result", nil)
	}

	if _, err := fmt.Fprintf(w, "digraph style_analysis {\n  rankdir=LR;\n  node [shape=box];\n\n"); err != nil {
		return domain.NewOutputError("writing dot header", err)
	}

	if err := writeBemSubgraph(w, result.Bem); err != nil {
		return err
	}
	if err := writeClusterSubgraph(w, result.Clusters); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "}\n")
	if err != nil {
		return domain.NewOutputError("writing dot footer", err)
	}
	return nil
}

func writeBemSubgraph(w io.Writer, bem domain.BemAnalysis) error {
	if len(bem.Components) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "  subgraph cluster_bem {\n    label=\"BEM components\";\n"); err != nil {
		return domain.NewOutputError("writing dot bem subgraph header", err)
	}
	for _, c := range bem.Components {
		if _, err := fmt.Fprintf(w, "    %q [label=%q];\n", c.Selector, fmt.Sprintf("%s\\n(%s)", c.Selector, c.Kind)); err != nil {
			return domain.NewOutputError("writing dot bem node", err)
		}
	}
	for _, rel := range bem.Relationships {
		if _, err := fmt.Fprintf(w, "    %q -> %q [label=%q];\n", rel.From, rel.To, string(rel.Kind)); err != nil {
			return domain.NewOutputError("writing dot bem edge", err)
		}
	}
	_, err := fmt.Fprintf(w, "  }\n\n")
	if err != nil {
		return domain.NewOutputError("writing dot bem subgraph footer", err)
	}
	return nil
}

func writeClusterSubgraph(w io.Writer, clusters []*domain.Cluster) error {
	if len(clusters) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "  subgraph cluster_clusters {\n    label=\"Property clusters\";\n"); err != nil {
		return domain.NewOutputError("writing dot cluster subgraph header", err)
	}
	for _, c := range clusters {
		if err := writeClusterNode(w, c, ""); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "  }\n\n")
	if err != nil {
		return domain.NewOutputError("writing dot cluster subgraph footer", err)
	}
	return nil
}

func writeClusterNode(w io.Writer, c *domain.Cluster, parentID string) error {
	label := clusterLabel(c)
	if _, err := fmt.Fprintf(w, "    %q [label=%q];\n", c.ID, label); err != nil {
		return domain.NewOutputError("writing dot cluster node", err)
	}
	if parentID != "" {
		if _, err := fmt.Fprintf(w, "    %q -> %q;\n", parentID, c.ID); err != nil {
			return domain.NewOutputError("writing dot cluster edge", err)
		}
	}
	for _, child := range c.Children {
		if err := writeClusterNode(w, child, c.ID); err != nil {
			return err
		}
	}
	return nil
}

// clusterLabel joins a cluster's first three properties, truncating the
// rest into a "+N more" suffix rather than listing every property.
func clusterLabel(c *domain.Cluster) string {
	props := c.Properties
	shown := props
	suffix := ""
	if len(props) > 3 {
		shown = props[:3]
		suffix = fmt.Sprintf(" +%d more", len(props)-3)
	}
	return fmt.Sprintf("%s\\n%s%s", c.Name, strings.Join(shown, ", "), suffix)
}
