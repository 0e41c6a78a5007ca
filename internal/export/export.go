package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/pendsim/internal/sim"
)

// Document is the JSON form of a trajectory. The arrays are parallel and
// TimeAxis holds sample indices, the default plotting axis.
type Document struct {
	Parameters        sim.Parameters     `json:"parameters"`
	StepCount         int                `json:"step_count"`
	TimeAxis          []float64          `json:"time_axis"`
	Times             []float64          `json:"times"`
	Angles            []float64          `json:"angle"`
	AngularVelocities []float64          `json:"angular_velocity"`
	X                 []float64          `json:"x"`
	Y                 []float64          `json:"y"`
	Metrics           map[string]float64 `json:"metrics,omitempty"`
}

func NewDocument(tr *sim.Trajectory, metrics map[string]float64) Document {
	xs, ys := tr.Cartesian()
	return Document{
		Parameters:        tr.Parameters(),
		StepCount:         tr.StepCount(),
		TimeAxis:          tr.IndexAxis(),
		Times:             tr.ElapsedAxis(),
		Angles:            tr.Angles(),
		AngularVelocities: tr.AngularVelocities(),
		X:                 xs,
		Y:                 ys,
		Metrics:           metrics,
	}
}

func WriteJSON(w io.Writer, tr *sim.Trajectory, metrics map[string]float64) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewDocument(tr, metrics))
}

var csvHeader = []string{"index", "time", "angle", "angular_velocity", "x", "y"}

// WriteCSV writes one row per sample. Floats use the shortest representation
// that parses back to the same bits.
func WriteCSV(w io.Writer, tr *sim.Trajectory) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	xs, ys := tr.Cartesian()
	for i := 0; i < tr.Len(); i++ {
		s := tr.At(i)
		row := []string{
			strconv.Itoa(s.Index),
			formatFloat(s.Time),
			formatFloat(s.Angle),
			formatFloat(s.AngularVelocity),
			formatFloat(xs[i]),
			formatFloat(ys[i]),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
