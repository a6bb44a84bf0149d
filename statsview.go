package diffplus

import (
	"fmt"
	"strings"
)

// barWidth is the cell budget for the change-distribution bars.
const barWidth = 50

// RenderStats emits the statistics view: a header, the count and similarity
// rows, the per-file size annotations when present, and a
// change-distribution bar proportional to each category's share of the total
// changes. It never walks the edit script line by line.
func RenderStats(sink Sink, res Result, st Stats) {
	sink.Emit(plain(RoleHeader, fmt.Sprintf("Diff Statistics: %s <-> %s", res.AName, res.BName)))

	sink.Emit(plain(RoleContext, statsRow("File A lines", fmt.Sprintf("%d", st.TotalLinesA))))
	sink.Emit(plain(RoleContext, statsRow("File B lines", fmt.Sprintf("%d", st.TotalLinesB))))
	sink.Emit(plain(RoleAdded, statsRow("Additions", fmt.Sprintf("%d", st.Additions))))
	sink.Emit(plain(RoleRemoved, statsRow("Deletions", fmt.Sprintf("%d", st.Deletions))))
	sink.Emit(plain(RoleModified, statsRow("Modifications", fmt.Sprintf("%d", st.Modifications))))
	sink.Emit(plain(RoleContext, statsRow("Total changes", fmt.Sprintf("%d", st.TotalChanges()))))
	sink.Emit(plain(RoleContext, statsRow("Similarity", fmt.Sprintf("%.1f%%", st.Similarity))))

	if res.AInfo != "" {
		sink.Emit(plain(RoleContext, statsRow("File A size", res.AInfo)))
	}
	if res.BInfo != "" {
		sink.Emit(plain(RoleContext, statsRow("File B size", res.BInfo)))
	}

	total := st.TotalChanges()
	if total == 0 {
		return
	}

	sink.Emit(plain(RoleHeader, "Change distribution:"))
	sink.Emit(plain(RoleAdded, distributionBar("+", st.Additions, total)))
	sink.Emit(plain(RoleRemoved, distributionBar("-", st.Deletions, total)))
	sink.Emit(plain(RoleModified, distributionBar("~", st.Modifications, total)))
}

func statsRow(label, value string) string {
	return fmt.Sprintf("%-15s %s", label+":", value)
}

// distributionBar builds one proportional bar row, e.g. "+ ████ 12".
func distributionBar(marker string, count, total int) string {
	cells := count * barWidth / total
	return fmt.Sprintf("%s %s %d", marker, strings.Repeat("█", cells), count)
}
