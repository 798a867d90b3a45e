package mathx

import (
	"errors"
	"testing"

	"github.com/ember-ml/ember/internal/device"
	"github.com/ember-ml/ember/internal/half"
)

type recordingAccelerator struct {
	calls int
	fail  bool
}

func (a *recordingAccelerator) Name() string { return "recording" }

func (a *recordingAccelerator) CopyBytes(dst, src []byte) error {
	a.calls++
	if a.fail {
		return errors.New("transfer rejected")
	}
	copy(dst, src)
	return nil
}

func (a *recordingAccelerator) Release() {}

func TestCopyHost(t *testing.T) {
	ctx := device.NewContext()

	t.Run("float32", func(t *testing.T) {
		src := []float32{1, 2, 3}
		dst := make([]float32, 3)
		Copy(ctx, 3, src, dst)
		if dst[0] != 1 || dst[1] != 2 || dst[2] != 3 {
			t.Errorf("dst = %v", dst)
		}
	})

	t.Run("half", func(t *testing.T) {
		src := toHalf([]float32{1.5, -2})
		dst := make([]half.Float16, 2)
		Copy(ctx, 2, src, dst)
		if dst[0].Bits() != src[0].Bits() || dst[1].Bits() != src[1].Bits() {
			t.Errorf("half copy mismatch")
		}
	})

	t.Run("int32", func(t *testing.T) {
		src := []int32{-7, 8}
		dst := make([]int32, 2)
		Copy(ctx, 2, src, dst)
		if dst[0] != -7 || dst[1] != 8 {
			t.Errorf("dst = %v", dst)
		}
	})

	t.Run("uint32", func(t *testing.T) {
		src := []uint32{0xDEADBEEF}
		dst := make([]uint32, 1)
		Copy(ctx, 1, src, dst)
		if dst[0] != 0xDEADBEEF {
			t.Errorf("dst = %v", dst)
		}
	})

	t.Run("partial count", func(t *testing.T) {
		src := []float64{1, 2, 3}
		dst := []float64{9, 9, 9}
		Copy(ctx, 2, src, dst)
		if dst[0] != 1 || dst[1] != 2 || dst[2] != 9 {
			t.Errorf("dst = %v", dst)
		}
	})
}

func TestCopySelfIsNoop(t *testing.T) {
	acc := &recordingAccelerator{}
	ctx := device.NewAcceleratedContext(acc)
	buf := []float32{1, 2, 3}
	Copy(ctx, 3, buf, buf)
	if acc.calls != 0 {
		t.Errorf("self-copy issued %d device transfers", acc.calls)
	}
	if buf[0] != 1 || buf[1] != 2 || buf[2] != 3 {
		t.Errorf("buf = %v", buf)
	}
}

func TestCopyZeroCountNoop(t *testing.T) {
	dst := []float32{5}
	Copy(device.NewContext(), 0, nil, dst)
	if dst[0] != 5 {
		t.Errorf("dst modified: %g", dst[0])
	}
}

func TestCopyAccelerated(t *testing.T) {
	acc := &recordingAccelerator{}
	ctx := device.NewAcceleratedContext(acc)
	src := []float32{4, 5, 6}
	dst := make([]float32, 3)
	Copy(ctx, 3, src, dst)
	if acc.calls != 1 {
		t.Errorf("calls = %d, want 1", acc.calls)
	}
	if dst[0] != 4 || dst[1] != 5 || dst[2] != 6 {
		t.Errorf("dst = %v", dst)
	}
}

func TestCopyAcceleratedWithoutCapabilityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when no accelerator is bound")
		}
	}()
	ctx := device.NewAcceleratedContext(nil)
	Copy(ctx, 1, []float32{1}, make([]float32, 1))
}

func TestCopyAcceleratedTransferFailurePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on transfer failure")
		}
	}()
	ctx := device.NewAcceleratedContext(&recordingAccelerator{fail: true})
	Copy(ctx, 1, []float32{1}, make([]float32, 1))
}
