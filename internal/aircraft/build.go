package aircraft

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alexiusacademia/golift/internal/airfoil"
	"github.com/alexiusacademia/golift/internal/logging"
	"github.com/alexiusacademia/golift/internal/observability"
	"github.com/alexiusacademia/golift/internal/units"
	"github.com/alexiusacademia/golift/internal/wing"
)

// Aircraft is an assembled wing tree together with its airfoils.
type Aircraft struct {
	Name     string
	Units    units.System
	Tree     *wing.Tree
	Airfoils map[string]*airfoil.Linear

	metrics *observability.Collector
}

// Build assembles the wing tree described by spec. Wings are attached parents
// first; among wings whose parents are in place the lowest ID goes first,
// then the name. A nil logger or collector disables logging or metrics.
func Build(ctx context.Context, spec *Spec, log logging.Logger, metrics *observability.Collector) (*Aircraft, error) {
	if log == nil {
		log = logging.Noop()
	}
	start := time.Now()

	sys, err := units.ParseSystem(spec.Units)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", wing.ErrConfiguration, err)
	}
	foils, err := spec.loadAirfoils()
	if err != nil {
		return nil, err
	}
	providers := wing.Providers{
		Airfoils:       make(map[string]wing.Provider, len(foils)),
		DefaultAirfoil: spec.defaultAirfoil(),
		Units:          sys,
	}
	for name, a := range foils {
		providers.Airfoils[name] = a
	}

	queue, err := spec.expand()
	if err != nil {
		metrics.ObserveAttach(wing.SideNone, err)
		return nil, err
	}

	log = log.With(logging.String("aircraft", spec.Name))
	log.Info(ctx, "building wing tree",
		logging.Int("segments", len(queue)),
		logging.Int("airfoils", len(foils)),
		logging.String("units", sys.String()))

	tree := wing.NewTree(wing.Vec3{X: spec.Origin[0], Y: spec.Origin[1], Z: spec.Origin[2]})
	placed := map[wing.Side]map[int]bool{
		wing.SideLeft:  {0: true},
		wing.SideRight: {0: true},
	}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		next := queue[:0:0]
		progressed := false
		for _, p := range queue {
			if !placed[p.side][p.spec.ConnectTo.ID] {
				next = append(next, p)
				continue
			}
			if err := attach(ctx, tree, p, providers, log, metrics); err != nil {
				return nil, err
			}
			placed[p.side][p.spec.ID] = true
			progressed = true
		}

		if !progressed {
			// Nothing left can find its parent; attaching the first one
			// reports which.
			if err := attach(ctx, tree, next[0], providers, log, metrics); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("wing %q: parent ID %d never attached", next[0].name, next[0].spec.ConnectTo.ID)
		}
		queue = next
	}

	metrics.ObserveBuild(time.Since(start), tree.Len())
	log.Info(ctx, "wing tree built", logging.Int("segments", tree.Len()))

	return &Aircraft{
		Name:     spec.Name,
		Units:    sys,
		Tree:     tree,
		Airfoils: foils,
		metrics:  metrics,
	}, nil
}

func attach(ctx context.Context, tree *wing.Tree, p pending, providers wing.Providers, log logging.Logger, metrics *observability.Collector) error {
	seg, err := tree.Attach(p.name, p.spec, p.side, providers)
	metrics.ObserveAttach(p.side, err)
	if err != nil {
		log.Error(ctx, "attach failed",
			logging.String("segment", p.name),
			logging.Int("parent_id", p.spec.ConnectTo.ID),
			logging.Err(err))
		return fmt.Errorf("wing %q: %w", p.name, err)
	}
	log.Debug(ctx, "segment attached",
		logging.String("segment", seg.Name()),
		logging.Int("id", seg.ID()),
		logging.String("side", seg.Side().String()),
		logging.Int("parent_id", p.spec.ConnectTo.ID),
		logging.Float("span", seg.Span()))
	return nil
}

// Segment returns the named segment or an error listing the known names.
func (a *Aircraft) Segment(name string) (*wing.Segment, error) {
	if seg := a.Tree.Find(name); seg != nil && !seg.IsOrigin() {
		return seg, nil
	}
	return nil, fmt.Errorf("no wing segment %q (have: %s)", name, strings.Join(a.SegmentNames(), ", "))
}

// SegmentNames returns the names of all segments, sorted.
func (a *Aircraft) SegmentNames() []string {
	var names []string
	for _, seg := range a.Tree.Segments() {
		names = append(names, seg.Name())
	}
	sort.Strings(names)
	return names
}

// Coefficients holds the section coefficients at one span station.
type Coefficients struct {
	CL, CD, Cm float64
}

// SectionCoefficients evaluates the section of the named segment at span
// fraction span and angle of attack alpha (rad).
func (a *Aircraft) SectionCoefficients(name string, span, alpha float64) (Coefficients, error) {
	seg, err := a.Segment(name)
	if err != nil {
		return Coefficients{}, err
	}
	if span < 0 || span > 1 {
		return Coefficients{}, &wing.ConfigurationError{Segment: name, Field: "span", Reason: fmt.Sprintf("span fraction must be within [0, 1], got %g", span)}
	}

	for _, k := range []wing.CoefficientKind{wing.Lift, wing.Drag, wing.Moment} {
		a.metrics.ObserveCoefficient(k)
	}
	return Coefficients{
		CL: seg.LiftCoefficient(span, alpha),
		CD: seg.DragCoefficient(span, alpha),
		Cm: seg.MomentCoefficient(span, alpha),
	}, nil
}
