package fftcompat

import (
	"testing"

	"github.com/cwbudde/fftcompat/backend"
)

func TestGetSizeMatchesMakePlan(t *testing.T) {
	t.Parallel()

	probe, res := GetSize1D(1024, C2C, 8)
	if res != Success {
		t.Fatalf("GetSize1D: %v", res)
	}

	h, res := Create()
	if res != Success {
		t.Fatalf("Create: %v", res)
	}
	defer h.Destroy()
	made, res := h.MakePlan1D(1024, C2C, 8)
	if res != Success {
		t.Fatalf("MakePlan1D: %v", res)
	}
	if made != probe {
		t.Errorf("MakePlan1D size %d, GetSize1D %d", made, probe)
	}
	if recorded, res := h.GetSize(); res != Success || recorded != made {
		t.Errorf("GetSize = %d, %v; want %d, Success", recorded, res, made)
	}
}

func TestGetSizeVariants(t *testing.T) {
	t.Parallel()

	if _, res := GetSize1D(-1, C2C, 1); res != InvalidSize {
		t.Errorf("negative 1-D length: %v, want InvalidSize", res)
	}
	if _, res := GetSize2D(8, -4, R2C); res != InvalidSize {
		t.Errorf("negative 2-D length: %v, want InvalidSize", res)
	}
	if _, res := GetSize3D(4, 4, -4, Z2Z); res != InvalidSize {
		t.Errorf("negative 3-D length: %v, want InvalidSize", res)
	}

	s2, res := GetSize2D(8, 4, R2C)
	if res != Success || s2 <= 0 {
		t.Errorf("GetSize2D = %d, %v", s2, res)
	}
	s3, res := GetSize3D(4, 4, 4, Z2Z)
	if res != Success || s3 <= 0 {
		t.Errorf("GetSize3D = %d, %v", s3, res)
	}
	sm, res := GetSizeMany(1, []int{64}, nil, 1, 0, nil, 1, 0, D2Z, 2)
	if res != Success || sm <= 0 {
		t.Errorf("GetSizeMany = %d, %v", sm, res)
	}
	sm64, res := GetSizeMany64(1, []int64{64}, nil, 1, 0, nil, 1, 0, D2Z, 2)
	if res != Success || sm64 != sm {
		t.Errorf("GetSizeMany64 = %d, %v; want %d", sm64, res, sm)
	}
	st, res := GetSizeManyTyped(1, []int64{64}, nil, 1, 0, R64F, nil, 1, 0, C64F, 2, C64F)
	if res != Success || st != sm {
		t.Errorf("GetSizeManyTyped = %d, %v; want %d", st, res, sm)
	}
}

func TestEstimatesMatchGetSize(t *testing.T) {
	t.Parallel()

	g, _ := GetSize1D(256, Z2Z, 2)
	e, res := Estimate1D(256, Z2Z, 2)
	if res != Success || e != g {
		t.Errorf("Estimate1D = %d, %v; want %d", e, res, g)
	}
	g, _ = GetSize2D(8, 8, C2C)
	e, res = Estimate2D(8, 8, C2C)
	if res != Success || e != g {
		t.Errorf("Estimate2D = %d, %v; want %d", e, res, g)
	}
	g, _ = GetSize3D(4, 4, 4, C2C)
	e, res = Estimate3D(4, 4, 4, C2C)
	if res != Success || e != g {
		t.Errorf("Estimate3D = %d, %v; want %d", e, res, g)
	}
	g, _ = GetSizeMany(1, []int{32}, nil, 1, 0, nil, 1, 0, C2C, 2)
	e, res = EstimateMany(1, []int{32}, nil, 1, 0, nil, 1, 0, C2C, 2)
	if res != Success || e != g {
		t.Errorf("EstimateMany = %d, %v; want %d", e, res, g)
	}
}

func TestSizeProbeLeavesNoAllocations(t *testing.T) {
	eng := backend.NewSoftEngine()
	swapEngine(t, eng)

	if _, res := GetSize1D(64, C2C, 1); res != Success {
		t.Fatalf("GetSize1D: %v", res)
	}
	if n := eng.LiveAllocs(); n != 0 {
		t.Errorf("size probe leaked %d allocations", n)
	}
}

func TestAutoAllocationOwnsWorkspace(t *testing.T) {
	eng := backend.NewSoftEngine()
	swapEngine(t, eng)

	h, res := Create()
	if res != Success {
		t.Fatalf("Create: %v", res)
	}
	if _, res := h.MakePlan1D(64, C2C, 1); res != Success {
		t.Fatalf("MakePlan1D: %v", res)
	}
	if n := eng.LiveAllocs(); n != 1 {
		t.Fatalf("live allocations after MakePlan = %d, want 1", n)
	}
	if res := h.Destroy(); res != Success {
		t.Fatalf("Destroy: %v", res)
	}
	if n := eng.LiveAllocs(); n != 0 {
		t.Errorf("live allocations after Destroy = %d, want 0", n)
	}
}

func TestManualWorkArea(t *testing.T) {
	eng := backend.NewSoftEngine()
	swapEngine(t, eng)

	h, res := Create()
	if res != Success {
		t.Fatalf("Create: %v", res)
	}
	defer h.Destroy()
	if res := h.SetAutoAllocation(false); res != Success {
		t.Fatalf("SetAutoAllocation: %v", res)
	}
	size, res := h.MakePlan1D(64, C2C, 1)
	if res != Success {
		t.Fatalf("MakePlan1D: %v", res)
	}
	if size <= 0 {
		t.Fatalf("workspace size = %d", size)
	}
	if n := eng.LiveAllocs(); n != 0 {
		t.Fatalf("auto-allocation off but engine holds %d allocations", n)
	}

	buf, err := eng.Malloc(size)
	if err != nil {
		t.Fatalf("Malloc: %v", err)
	}
	defer eng.Free(buf)
	if res := h.SetWorkArea(buf); res != Success {
		t.Fatalf("SetWorkArea: %v", res)
	}
	ptr, bytes := h.info.(*backend.SoftExecutionInfo).WorkBuffer()
	if ptr != buf || bytes != size {
		t.Errorf("work buffer binding = %p/%d, want %p/%d", ptr, bytes, buf, size)
	}

	// The bound workspace is caller-owned; clearing and destroying must not
	// free it.
	if res := h.SetWorkArea(nil); res != Success {
		t.Fatalf("SetWorkArea(nil): %v", res)
	}
	if res := h.Destroy(); res != Success {
		t.Fatalf("Destroy: %v", res)
	}
	if n := eng.LiveAllocs(); n != 1 {
		t.Errorf("caller workspace freed by the plan: %d live allocations", n)
	}
}

func TestSetStream(t *testing.T) {
	t.Parallel()

	h := mustPlan1D(t, 8, C2C, 1)
	stream, err := backend.ActiveEngine().NewStream()
	if err != nil {
		t.Fatalf("NewStream: %v", err)
	}
	if res := h.SetStream(stream); res != Success {
		t.Fatalf("SetStream: %v", res)
	}
	if got := h.info.(*backend.SoftExecutionInfo).Stream(); got != stream {
		t.Error("stream binding not recorded")
	}

	var nilH *Handle
	if res := nilH.SetStream(stream); res != InvalidPlan {
		t.Errorf("nil handle SetStream: %v, want InvalidPlan", res)
	}
}
