package expression

import (
	"fmt"
	"sync"
)

// LossKind selects the per-point reduction applied to evaluated outputs.
type LossKind int

const (
	// MSE is the mean of squared per-output differences.
	MSE LossKind = iota
	// CrossEntropy is the softmax negative log-likelihood against the
	// provided labels.
	CrossEntropy
)

func (k LossKind) String() string {
	switch k {
	case MSE:
		return "MSE"
	case CrossEntropy:
		return "CE"
	default:
		return fmt.Sprintf("LossKind(%d)", int(k))
	}
}

// ParseLossKind maps a loss name to its kind. Recognized names are
// "MSE" and "CE".
func ParseLossKind(name string) (LossKind, error) {
	switch name {
	case "MSE":
		return MSE, nil
	case "CE":
		return CrossEntropy, nil
	default:
		return 0, fmt.Errorf("%w: %q, want \"MSE\" or \"CE\"", ErrUnknownLossKind, name)
	}
}

// Loss evaluates the expression at point and reduces the outputs
// against label with the given loss kind.
func (e *Expression[T]) Loss(point, label []T, kind LossKind) (T, error) {
	var zero T
	if len(point) != e.n {
		return zero, fmt.Errorf("%w: input length %d, want %d", ErrShapeMismatch, len(point), e.n)
	}
	if len(label) != e.m {
		return zero, fmt.Errorf("%w: label length %d, want %d", ErrShapeMismatch, len(label), e.m)
	}
	if kind != MSE && kind != CrossEntropy {
		return zero, fmt.Errorf("%w: %v", ErrUnknownLossKind, kind)
	}
	return e.pointLoss(point, label, kind), nil
}

// pointLoss assumes shapes and kind were validated by the caller.
func (e *Expression[T]) pointLoss(point, label []T, kind LossKind) T {
	outputs, _ := e.Eval(point)

	switch kind {
	case CrossEntropy:
		// Subtract the max output before exponentiating to keep the
		// softmax numerically stable.
		maxOut := outputs[0]
		for _, o := range outputs[1:] {
			if e.ops.Scalar(o) > e.ops.Scalar(maxOut) {
				maxOut = o
			}
		}
		cumsum := e.ops.Const(0)
		exps := make([]T, len(outputs))
		for i, o := range outputs {
			exps[i] = e.ops.Exp(e.ops.Sub(o, maxOut))
			cumsum = e.ops.Add(cumsum, exps[i])
		}
		acc := e.ops.Const(0)
		for i := range exps {
			acc = e.ops.Add(acc, e.ops.Mul(e.ops.Log(e.ops.Div(exps[i], cumsum)), label[i]))
		}
		return e.ops.Sub(e.ops.Const(0), acc)
	default: // MSE
		acc := e.ops.Const(0)
		for i, o := range outputs {
			d := e.ops.Sub(o, label[i])
			acc = e.ops.Add(acc, e.ops.Mul(d, d))
		}
		return e.ops.Div(acc, e.ops.Const(float64(e.m)))
	}
}

// BatchLoss computes the mean per-point loss over parallel point/label
// batches. kindName is "MSE" or "CE". parallel == 0 runs serially;
// parallel > 0 splits the batch into that many equal contiguous chunks,
// each reduced by its own goroutine into a local sum that is folded into
// the shared accumulator under a single mutex. Point losses are
// independent and averaged once at the end, so the degree of
// parallelism never changes the result.
func (e *Expression[T]) BatchLoss(points, labels [][]T, kindName string, parallel int) (T, error) {
	var zero T
	kind, err := ParseLossKind(kindName)
	if err != nil {
		return zero, err
	}
	if len(points) != len(labels) {
		return zero, fmt.Errorf("%w: %d points, %d labels", ErrBatchSize, len(points), len(labels))
	}
	if len(points) == 0 {
		return zero, fmt.Errorf("%w: batch is empty", ErrBatchSize)
	}
	for i := range points {
		if len(points[i]) != e.n {
			return zero, fmt.Errorf("%w: point %d has length %d, want %d", ErrShapeMismatch, i, len(points[i]), e.n)
		}
		if len(labels[i]) != e.m {
			return zero, fmt.Errorf("%w: label %d has length %d, want %d", ErrShapeMismatch, i, len(labels[i]), e.m)
		}
	}

	batch := len(points)
	total := e.ops.Const(0)
	if parallel > 0 {
		if batch%parallel != 0 {
			return zero, fmt.Errorf("%w: batch size %d is not divisible by %d", ErrBatchSize, batch, parallel)
		}
		chunk := batch / parallel

		var mu sync.Mutex
		var wg sync.WaitGroup
		wg.Add(parallel)
		for w := 0; w < parallel; w++ {
			go func(start int) {
				defer wg.Done()
				local := e.ops.Const(0)
				for j := 0; j < chunk; j++ {
					local = e.ops.Add(local, e.pointLoss(points[start+j], labels[start+j], kind))
				}
				mu.Lock()
				total = e.ops.Add(total, local)
				mu.Unlock()
			}(w * chunk)
		}
		wg.Wait()
	} else {
		for i := range points {
			total = e.ops.Add(total, e.pointLoss(points[i], labels[i], kind))
		}
	}
	return e.ops.Div(total, e.ops.Const(float64(batch))), nil
}
