package analysis

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
)

// Measure times one variant and computes its avalanche and bit-balance
// statistics over a sample derived from data.
// Complexity: O((Iterations + 3·Samples) × cost of one hash).
func Measure(v Variant, data []byte, cfg ReportConfig) (Result, error) {
	if v.Hash == nil {
		return Result{}, ErrNilHash
	}
	if len(data) == 0 {
		return Result{}, ErrEmptyData
	}
	cfg = cfg.normalize()

	inputs := deriveInputs(data, cfg.Samples)

	avgTime, err := Throughput(v.Hash, data, cfg.Iterations)
	if err != nil {
		return Result{}, err
	}
	avalanche, err := AvalancheMean(v.Hash, inputs)
	if err != nil {
		return Result{}, err
	}
	balance, err := BitBalance(v.Hash, inputs)
	if err != nil {
		return Result{}, err
	}
	sample, err := v.Hash(data)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Name:          v.Name,
		AvgTime:       avgTime,
		AvalanchePct:  avalanche,
		BitBalancePct: balance,
		Sample:        sample,
	}, nil
}

// WriteReport measures every variant and renders one comparison table.
// Variants are reported in the given order.
func WriteReport(w io.Writer, variants []Variant, data []byte, cfg ReportConfig) error {
	if len(variants) == 0 {
		return ErrNoInputs
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VARIANT\tAVG TIME\tAVALANCHE %\tBIT BALANCE %\tSAMPLE")
	for _, v := range variants {
		res, err := Measure(v, data, cfg)
		if err != nil {
			return fmt.Errorf("measuring %s: %w", v.Name, err)
		}
		sample := res.Sample
		if len(sample) > 16 {
			sample = sample[:16] + "…"
		}
		fmt.Fprintf(tw, "%s\t%v\t%.2f\t%.2f\t%s\n",
			res.Name, res.AvgTime, res.AvalanchePct, res.BitBalancePct, sample)
	}

	return tw.Flush()
}

// deriveInputs expands one payload into n distinct sample inputs by
// appending a decimal counter, mirroring how a mining sweep varies its
// candidates.
func deriveInputs(data []byte, n int) [][]byte {
	inputs := make([][]byte, n)
	for i := range inputs {
		buf := make([]byte, 0, len(data)+12)
		buf = append(buf, data...)
		buf = append(buf, '_')
		buf = strconv.AppendInt(buf, int64(i), 10)
		inputs[i] = buf
	}
	return inputs
}
