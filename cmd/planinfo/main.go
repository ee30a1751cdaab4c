package main

import (
	"log"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"

	"github.com/cwbudde/fftcompat"
	"github.com/cwbudde/fftcompat/backend"
)

var version = "unknown"

var kinds = map[string]fftcompat.TransformType{
	"c2c": fftcompat.C2C,
	"r2c": fftcompat.R2C,
	"c2r": fftcompat.C2R,
	"z2z": fftcompat.Z2Z,
	"d2z": fftcompat.D2Z,
	"z2d": fftcompat.Z2D,
}

func main() {
	log.SetFlags(0)

	sizeList := "16,256,1024"
	kindName := "z2z"
	batch := 1
	check := false
	seed := int64(1)

	flaggy.SetName("planinfo")
	flaggy.SetDescription("inspect fftcompat plan workspace sizes against the software engine")
	flaggy.SetVersion(version)
	flaggy.String(&sizeList, "s", "sizes", "comma-separated 1-D transform lengths")
	flaggy.String(&kindName, "t", "type", "transform type: c2c, r2c, c2r, z2z, d2z, z2d")
	flaggy.Int(&batch, "b", "batch", "batch count")
	flaggy.Bool(&check, "c", "check", "run a z2z forward/inverse round-trip check per size")
	flaggy.Int64(&seed, "", "seed", "rng seed for the round-trip check")
	flaggy.Parse()

	kind, ok := kinds[strings.ToLower(kindName)]
	if !ok {
		log.Fatalf("unknown transform type %q", kindName)
	}

	backend.RegisterSoftEngine()

	engineVersion, res := fftcompat.GetVersion()
	if res != fftcompat.Success {
		log.Fatalf("query engine version: %v", res)
	}
	log.Printf("engine version %d", engineVersion)
	log.Printf("%8s  %6s  %6s  %12s", "size", "type", "batch", "workspace")

	rnd := rand.New(rand.NewSource(seed))

	for _, field := range strings.Split(sizeList, ",") {
		nx, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || nx < 1 {
			log.Fatalf("bad size %q", field)
		}
		size, res := fftcompat.GetSize1D(nx, kind, batch)
		if res != fftcompat.Success {
			log.Fatalf("size query for %d failed: %v", nx, res)
		}
		log.Printf("%8d  %6s  %6d  %12d", nx, kindName, batch, size)

		if check && kind == fftcompat.Z2Z {
			if err := roundTrip(rnd, nx, batch); err != nil {
				log.Fatalf("round-trip check for %d failed: %v", nx, err)
			}
			log.Printf("%8d  round-trip ok", nx)
		}
	}
}

func roundTrip(rnd *rand.Rand, nx, batch int) error {
	h, res := fftcompat.Create()
	if res != fftcompat.Success {
		return errors.Errorf("create: %v", res)
	}
	defer h.Destroy()

	if _, res := h.MakePlan1D(nx, fftcompat.Z2Z, batch); res != fftcompat.Success {
		return errors.Errorf("make plan: %v", res)
	}

	total := nx * batch
	src := make([]complex128, total)
	freq := make([]complex128, total)
	back := make([]complex128, total)
	for i := range src {
		src[i] = complex(rnd.Float64()-0.5, rnd.Float64()-0.5)
	}

	if res := h.ExecZ2Z(&src[0], &freq[0], fftcompat.Forward); res != fftcompat.Success {
		return errors.Errorf("forward: %v", res)
	}
	if res := h.ExecZ2Z(&freq[0], &back[0], fftcompat.Backward); res != fftcompat.Success {
		return errors.Errorf("inverse: %v", res)
	}

	scale := 1 / float64(nx)
	for i := range src {
		got := back[i] * complex(scale, 0)
		if math.Abs(real(got-src[i])) > 1e-9 || math.Abs(imag(got-src[i])) > 1e-9 {
			return errors.Errorf("element %d: got %v, want %v", i, got, src[i])
		}
	}
	return nil
}
