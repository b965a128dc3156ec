package filtering

import (
	"fmt"
	"time"

	"github.com/quietocean/strainwave/algorithms/filters"
	"github.com/quietocean/strainwave/algorithms/fk"
	"github.com/quietocean/strainwave/logging"
)

// Processor designs an f-k mask once per acquisition geometry and
// applies it to any number of trace segments sharing that geometry.
// The mask is immutable after construction, so concurrent Filter calls
// on one processor are safe.
type Processor struct {
	cfg      Config
	meta     AcquisitionMetadata
	sel      fk.ChannelSelection
	mask     fk.Mask
	bandpass *filters.SOSFilter
	logger   logging.Logger
}

// NewProcessor validates the configuration and designs the mask for
// traces of shape (meta.Nx, meta.Ns) under the given channel selection
func NewProcessor(meta AcquisitionMetadata, sel fk.ChannelSelection, cfg Config) (*Processor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if meta.Nx < 1 || meta.Ns < 1 {
		return nil, fmt.Errorf("acquisition metadata: need nx >= 1 and ns >= 1, got (%d, %d)", meta.Nx, meta.Ns)
	}

	logger := logging.WithFields(logging.Fields{
		"component": "filtering",
		"variant":   string(cfg.Variant),
	})

	start := time.Now()
	mask, err := designMask(meta, sel, cfg)
	if err != nil {
		return nil, err
	}

	fields := logging.Fields{
		"nx":          meta.Nx,
		"ns":          meta.Ns,
		"design_time": time.Since(start).String(),
	}
	if sparse, ok := mask.(*fk.Sparse); ok {
		fields["nnz"] = sparse.NNZ()
	}
	logger.Info("designed f-k mask", fields)

	p := &Processor{
		cfg:    cfg,
		meta:   meta,
		sel:    sel,
		mask:   mask,
		logger: logger,
	}

	if b := cfg.Butterworth; b != nil {
		sos, err := filters.DesignButterworth(b.Order, []float64{b.Low, b.High}, "bandpass", meta.Fs)
		if err != nil {
			return nil, err
		}
		p.bandpass = sos
	}

	return p, nil
}

func designMask(meta AcquisitionMetadata, sel fk.ChannelSelection, cfg Config) (fk.Mask, error) {
	nx, ns := meta.Nx, meta.Ns
	switch cfg.Variant {
	case VariantRectangular:
		return fk.DesignRectangular(nx, ns, sel, meta.Dx, meta.Fs, cfg.SpeedBand, cfg.Design)
	case VariantHybrid:
		return fk.DesignHybrid(nx, ns, sel, meta.Dx, meta.Fs, cfg.SpeedBand, cfg.FrequencyBand, cfg.Design)
	case VariantHybridNinf:
		return fk.DesignHybridNinf(nx, ns, sel, meta.Dx, meta.Fs, cfg.SpeedBand, cfg.FrequencyBand, cfg.Design)
	case VariantHybridSmoothed:
		return fk.DesignHybridSmoothed(nx, ns, sel, meta.Dx, meta.Fs, cfg.SpeedBand, cfg.FrequencyBand, cfg.Design)
	case VariantHybridNinfSmoothed:
		return fk.DesignHybridNinfSmoothed(nx, ns, sel, meta.Dx, meta.Fs, cfg.SpeedBand, cfg.FrequencyBand, cfg.Design)
	default:
		return nil, fmt.Errorf("unknown filter variant %q", cfg.Variant)
	}
}

// Mask exposes the designed mask for reuse outside the processor
func (p *Processor) Mask() fk.Mask {
	return p.mask
}

// Filter applies the designed mask to one trace segment. The input is
// never mutated; tapering follows the configuration.
func (p *Processor) Filter(trace Trace) (Trace, error) {
	return fk.Apply(trace, p.mask, fk.ApplyOptions{
		Tapering:   p.cfg.Tapering,
		TaperAlpha: p.cfg.TaperAlpha,
	})
}

// Bandpass runs the configured Butterworth stage zero-phase over every
// channel. Requires a Butterworth spec in the configuration.
func (p *Processor) Bandpass(trace Trace) (Trace, error) {
	if p.bandpass == nil {
		return nil, fmt.Errorf("no butterworth stage configured")
	}
	return p.bandpass.FiltFiltTrace(trace)
}
