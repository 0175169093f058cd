package export

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/alexiusacademia/gotendon/internal/tendon"
)

// WriteDXF writes the profile as a minimal DXF R12 document: a 2D
// POLYLINE through the sample points on layer PROFILE and a POINT
// entity per inflection point on layer INFLECTION. R12 group-code pairs
// keep the file readable by effectively every CAD package.
func WriteDXF(result tendon.CalculationResult, w io.Writer) error {
	bw := bufio.NewWriter(w)

	tag := func(code int, value string) {
		fmt.Fprintf(bw, "%d\n%s\n", code, value)
	}
	ftag := func(code int, value float64) {
		fmt.Fprintf(bw, "%d\n%.4f\n", code, value)
	}

	tag(0, "SECTION")
	tag(2, "ENTITIES")

	tag(0, "POLYLINE")
	tag(8, "PROFILE")
	tag(66, "1") // vertices follow
	tag(70, "0") // open polyline

	for _, pt := range result.Points {
		tag(0, "VERTEX")
		tag(8, "PROFILE")
		ftag(10, pt.X)
		ftag(20, pt.Y)
		ftag(30, 0)
	}

	tag(0, "SEQEND")

	for _, ip := range result.InflectionPoints {
		tag(0, "POINT")
		tag(8, "INFLECTION")
		ftag(10, ip.X)
		ftag(20, ip.Y)
		ftag(30, 0)
	}

	tag(0, "ENDSEC")
	tag(0, "EOF")

	return bw.Flush()
}

// ExportDXF writes the profile polyline to a DXF file.
func ExportDXF(result tendon.CalculationResult, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create dxf: %w", err)
	}
	defer f.Close()
	return WriteDXF(result, f)
}
