package builtins

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/dsp/window"

	"soc/object"
)

func registerSignal(r *FunctionRegistry) {
	r.Register("dft", 1, transformBuiltin("dft", false, spectrumMatrix))
	r.Register("dft_mag", 1, transformBuiltin("dft_mag", false, magnitudeVector))
	r.Register("dft_phase", 1, transformBuiltin("dft_phase", false, phaseVector))
	r.Register("fft", 1, transformBuiltin("fft", true, spectrumMatrix))
	r.Register("fft_mag", 1, transformBuiltin("fft_mag", true, magnitudeVector))
	r.Register("fft_phase", 1, transformBuiltin("fft_phase", true, phaseVector))
	r.Register("ifft", 1, ifftBuiltin)
	r.Register("conv", 2, convBuiltin)
	r.Register("conv_fft", 2, convFFTBuiltin)
	r.Register("hanning", 1, windowBuiltin("hanning", window.Hann))
	r.Register("hamming", 1, windowBuiltin("hamming", window.Hamming))
	r.Register("blackman", 1, windowBuiltin("blackman", window.Blackman))
	r.Register("linspace", 3, linspaceBuiltin)
	r.Register("fftshift", 1, shiftBuiltin("fftshift", splitHigh))
	r.Register("ifftshift", 1, shiftBuiltin("ifftshift", splitLow))
	r.Register("fft_spectrum", Variadic, fftSpectrumBuiltin)
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// coefficients runs the unnormalized forward transform, zero-padding to
// the next power of two when pad is set (the dft family transforms at
// the signal's own length).
func coefficients(signal []float64, pad bool) []complex128 {
	n := len(signal)
	if pad {
		n = nextPowerOfTwo(n)
	}
	seq := make([]complex128, n)
	for i, s := range signal {
		seq[i] = complex(s, 0)
	}
	ft := fourier.NewCmplxFFT(n)
	return ft.Coefficients(nil, seq)
}

// The spectrum's wire shape is an N-by-2 matrix of (real, imag) rows.
func spectrumMatrix(coeffs []complex128) object.Object {
	result := object.NewMatrix(len(coeffs), 2)
	for i, c := range coeffs {
		result.Set(i, 0, real(c))
		result.Set(i, 1, imag(c))
	}
	return result
}

func magnitudeVector(coeffs []complex128) object.Object {
	elements := make([]float64, len(coeffs))
	for i, c := range coeffs {
		elements[i] = cmplx.Abs(c)
	}
	return &object.Vector{Elements: elements}
}

func phaseVector(coeffs []complex128) object.Object {
	elements := make([]float64, len(coeffs))
	for i, c := range coeffs {
		elements[i] = cmplx.Phase(c)
	}
	return &object.Vector{Elements: elements}
}

func transformBuiltin(name string, pad bool, shape func([]complex128) object.Object) Callable {
	return func(ctx Context, args []object.Object) object.Object {
		signal, err := argVec(name, 0, args)
		if err != nil {
			return err
		}
		if len(signal) == 0 {
			return &object.Error{ErrorId: "built/vec/empty", Info: []any{name}}
		}
		return shape(coefficients(signal, pad))
	}
}

// ifft inverts an N-by-2 spectrum back to the real signal. The inverse
// transform is unnormalized, so the sequence is divided through by N.
func ifftBuiltin(ctx Context, args []object.Object) object.Object {
	m, err := argMat("ifft", 0, args)
	if err != nil {
		return err
	}
	if m.Cols != 2 || m.Rows == 0 {
		return &object.Error{ErrorId: "built/fft/format", Info: []any{"ifft"}}
	}
	coeffs := make([]complex128, m.Rows)
	for i := 0; i < m.Rows; i++ {
		coeffs[i] = complex(m.At(i, 0), m.At(i, 1))
	}
	ft := fourier.NewCmplxFFT(len(coeffs))
	seq := ft.Sequence(nil, coeffs)
	elements := make([]float64, len(seq))
	for i, s := range seq {
		elements[i] = real(s) / float64(len(seq))
	}
	return &object.Vector{Elements: elements}
}

func convBuiltin(ctx Context, args []object.Object) object.Object {
	a, err := argVec("conv", 0, args)
	if err != nil {
		return err
	}
	b, err := argVec("conv", 1, args)
	if err != nil {
		return err
	}
	if len(a) == 0 || len(b) == 0 {
		return &object.Error{ErrorId: "built/conv/empty", Info: []any{"conv"}}
	}
	elements := make([]float64, len(a)+len(b)-1)
	for i, x := range a {
		for j, y := range b {
			elements[i+j] += x * y
		}
	}
	return &object.Vector{Elements: elements}
}

// conv_fft is conv through the frequency domain; same result, better
// than quadratic for long signals.
func convFFTBuiltin(ctx Context, args []object.Object) object.Object {
	a, err := argVec("conv_fft", 0, args)
	if err != nil {
		return err
	}
	b, err := argVec("conv_fft", 1, args)
	if err != nil {
		return err
	}
	if len(a) == 0 || len(b) == 0 {
		return &object.Error{ErrorId: "built/conv/empty", Info: []any{"conv_fft"}}
	}
	outLen := len(a) + len(b) - 1
	n := nextPowerOfTwo(outLen)
	ft := fourier.NewCmplxFFT(n)
	pad := func(v []float64) []complex128 {
		seq := make([]complex128, n)
		for i, s := range v {
			seq[i] = complex(s, 0)
		}
		return seq
	}
	fa := ft.Coefficients(nil, pad(a))
	fb := ft.Coefficients(nil, pad(b))
	for i := range fa {
		fa[i] *= fb[i]
	}
	seq := ft.Sequence(nil, fa)
	elements := make([]float64, outLen)
	for i := range elements {
		elements[i] = real(seq[i]) / float64(n)
	}
	return &object.Vector{Elements: elements}
}

func windowBuiltin(name string, apply func([]float64) []float64) Callable {
	return func(ctx Context, args []object.Object) object.Object {
		n, err := argInt(name, 0, args)
		if err != nil {
			return err
		}
		if n < 1 {
			return &object.Error{ErrorId: "built/window/size", Info: []any{name}}
		}
		elements := make([]float64, n)
		for i := range elements {
			elements[i] = 1
		}
		return &object.Vector{Elements: apply(elements)}
	}
}

func linspaceBuiltin(ctx Context, args []object.Object) object.Object {
	start, err := argNum("linspace", 0, args)
	if err != nil {
		return err
	}
	stop, err := argNum("linspace", 1, args)
	if err != nil {
		return err
	}
	num, err := argInt("linspace", 2, args)
	if err != nil {
		return err
	}
	if num < 1 {
		return &object.Error{ErrorId: "built/window/size", Info: []any{"linspace"}}
	}
	elements := make([]float64, num)
	if num == 1 {
		elements[0] = start
		return &object.Vector{Elements: elements}
	}
	step := (stop - start) / float64(num-1)
	for i := range elements {
		elements[i] = start + float64(i)*step
	}
	return &object.Vector{Elements: elements}
}

// splitHigh is the fftshift split point, splitLow its inverse; the two
// agree for even lengths and differ by one for odd.
func splitHigh(n int) int { return (n + 1) / 2 }
func splitLow(n int) int  { return n / 2 }

func rotate(v []float64, p int) []float64 {
	return append(append([]float64{}, v[p:]...), v[:p]...)
}

func shiftBuiltin(name string, split func(int) int) Callable {
	return func(ctx Context, args []object.Object) object.Object {
		v, err := argVec(name, 0, args)
		if err != nil {
			return err
		}
		if len(v) == 0 {
			return &object.Vector{Elements: []float64{}}
		}
		return &object.Vector{Elements: rotate(v, split(len(v)))}
	}
}

// fft_spectrum(signal, fs, [shift], [angular], [omegaRange]) returns an
// N-by-3 matrix of (frequency, magnitude, phase) rows. shift centers the
// zero frequency (default on), angular converts Hz to rad/s (default
// on), and a positive omegaRange keeps only |freq| <= omegaRange.
func fftSpectrumBuiltin(ctx Context, args []object.Object) object.Object {
	if len(args) < 2 {
		return &object.Error{ErrorId: "eval/arity", Info: []any{"fft_spectrum", 2, len(args)}}
	}
	if len(args) > 5 {
		return &object.Error{ErrorId: "eval/arity", Info: []any{"fft_spectrum", 5, len(args)}}
	}
	signal, err := argVec("fft_spectrum", 0, args)
	if err != nil {
		return err
	}
	if len(signal) == 0 {
		return &object.Error{ErrorId: "built/vec/empty", Info: []any{"fft_spectrum"}}
	}
	fs, err := argNum("fft_spectrum", 1, args)
	if err != nil {
		return err
	}
	if fs <= 0 {
		return &object.Error{ErrorId: "built/fft/fs"}
	}
	shift, angular, omegaRange := 1.0, 1.0, -1.0
	for i, target := range []*float64{&shift, &angular, &omegaRange} {
		if len(args) > i+2 {
			value, err := argNum("fft_spectrum", i+2, args)
			if err != nil {
				return err
			}
			*target = value
		}
	}

	coeffs := coefficients(signal, true)
	n := len(coeffs)
	freqs := make([]float64, n)
	mags := make([]float64, n)
	phases := make([]float64, n)
	for k, c := range coeffs {
		freqs[k] = float64(k) * fs / float64(n)
		mags[k] = cmplx.Abs(c)
		phases[k] = cmplx.Phase(c)
	}
	// Unshifted output runs 0..fs; only the shift path recenters the
	// upper bins around zero.
	if shift != 0 {
		p := splitHigh(n)
		for k := p; k < n; k++ {
			freqs[k] -= fs
		}
		freqs = rotate(freqs, p)
		mags = rotate(mags, p)
		phases = rotate(phases, p)
	}
	if angular != 0 {
		for k := range freqs {
			freqs[k] *= 2 * math.Pi
		}
	}
	keep := make([]int, 0, n)
	for k := range freqs {
		if omegaRange <= 0 || math.Abs(freqs[k]) <= omegaRange {
			keep = append(keep, k)
		}
	}
	result := object.NewMatrix(len(keep), 3)
	for i, k := range keep {
		result.Set(i, 0, freqs[k])
		result.Set(i, 1, mags[k])
		result.Set(i, 2, phases[k])
	}
	return result
}
