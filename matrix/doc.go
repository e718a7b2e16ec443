// Package matrix provides Dense, the generic numerical matrix behind the lvnet
// neural-network layers.
//
// The matrix package provides:
//
//   - Dense[T]: a row-major H×W container over any Element type, with
//     bounds-checked At/Set, deep Clone and whole-value CopyFrom.
//   - Constructors: NewEmpty, NewZeros, NewRandom (seeded, per-call source),
//     FromRows, NewIdentity, NewFilled.
//   - In-place element-wise updates: AddAssign, SubAssign, MulAssign (Hadamard).
//   - Pure kernels: Transpose and Dot (matrix product).
//   - Formatted output: Fprint, Print, String ("%+1.3f" by default).
//
// Heavy kernels run on an Engine bound per matrix (WithEngine). CPU is the
// default; engine/blasengine (gonum) and engine/tensorengine (gorgonia tensor)
// provide drop-in alternatives, and an accelerator engine plugs in the same way.
//
// Failures are returned as wrapped sentinels (ErrShape, ErrOutOfRange, ...)
// matched with errors.Is; a failed operation leaves its operands unchanged.
//
// A Dense is not internally synchronized: concurrent reads are safe,
// concurrent mutation of one instance is not.
package matrix
