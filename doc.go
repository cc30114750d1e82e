/*
Package numconst derives exact floating-point literals for mathematical constants.
For each constant it computes a high-precision decimal value and then finds,
for IEEE-754 binary32 and binary64, the shortest correctly rounded prefix of
that value which converts to exactly the same binary number.
The literals are meant to be pasted into source code as compile-time constants,
together with a comment showing the decimal value and the bit patterns.

# Context

All arithmetic is carried out in an explicit [Context]:

	| Attribute          | Default | Meaning                                         |
	| ------------------ | ------- | ----------------------------------------------- |
	| Working precision  | 75      | significant digits of every decimal operation   |
	| Output precision   | 50      | fractional digits shown in value comments       |
	| Convergence target | 1e-73   | 10^-(working precision - 2), relative change    |
	| Rounding method    | Half To Even                                      |

The working precision must exceed the output precision by at least 10 digits,
so that the value comments and the literals are never affected by the
rounding error of the last few digits.
A context is immutable and can be shared by multiple goroutines.

# Values

A [Value] is an immutable decimal produced by one of:

  - the literal table: [Context.Literal] for "pi" and "e".
    The literals are exact strings, each validated to have at least
    working precision + 10 fractional digits.
  - the root solver: [Context.Sqrt], [Context.Cbrt], [Context.InvSqrt],
    [Context.InvCbrt].
    Roots are computed by Newton's method starting from 1.
    Reciprocals are one division of 1 by the converged root.
  - pi multiples: [Context.PiMult] and [Context.InvPiMult].

# Literals

[Shortest] drops digits from the right end of a decimal string, rounding half
up at each cut, and stops as soon as the result converts to a different
binary value. Every accepted candidate is checked against the bit pattern of
the full string, so the result is correct by construction.
[Context.Format] combines it with the bit pattern of the full value and
its hexadecimal rendering by [Target.Hex].

# Generation

A [Generator] evaluates a list of [Request] values, each naming a kind of
constant and its integer parameters, and returns one [Result] per request in
request order. [Context.Render] turns results into C++ or Go declarations.

# Errors

Every failure is reported as an error, and the batch is abandoned on the first one:

  - Invalid precision or malformed literal: [NewContext] fails.
  - Domain error: roots of non-positive integers, pi multiples with
    non-positive factors.
  - No convergence: the Newton iteration exceeded [Context.MaxIter] steps.
  - Malformed or too short decimal string: [Shortest] ran out of digits,
    usually because the value is exactly representable.
  - Hex mismatch: the bit-field rendering disagrees with [strconv.FormatFloat].
    This indicates a bug and must never be ignored.

[strconv.FormatFloat]: https://pkg.go.dev/strconv#FormatFloat
*/
package numconst
