package runner

import (
	"fmt"

	"github.com/projectdiscovery/gologger"

	"github.com/coregx/regexer"
)

// sizeUnits in ascending powers of 1024. The report picks the largest
// unit the byte count exceeds.
var sizeUnits = []string{"B", "KiB", "MiB", "GiB"}

// formatSize renders a byte count with four decimals in the largest
// fitting 1024-based unit.
func formatSize(bytes int) string {
	size := float64(bytes)
	unit := 0
	for unit < len(sizeUnits)-1 && size >= 1024 {
		size /= 1024
		unit++
	}
	return fmt.Sprintf("%.4f %s", size, sizeUnits[unit])
}

// printMemoryUsage reports the allocation accounting of a compiled
// matcher.
func printMemoryUsage(re *regexer.Regex) {
	stats := re.Stats()
	gologger.Info().Msgf("Allocation count: %d", stats.Allocations)
	gologger.Info().Msgf("Allocation size: %s", formatSize(stats.AutomatonBytes))
	gologger.Info().Msgf("Total memory used: %s", formatSize(stats.HeapBytes))
}
