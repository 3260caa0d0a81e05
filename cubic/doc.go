// Package cubic evaluates cubic Bézier curves over integer control points.
/*

A curve is given by four control points A, B, C and D. It is evaluated at
an integer parameter t, which stands for the fraction t/1023 (10 bits of
resolution). Evaluation follows de Casteljau: linear interpolation between
adjacent control points, repeated three times.

   ab = Linerp(A, B, t)    bc = Linerp(B, C, t)    cd = Linerp(C, D, t)
   abbc = Linerp(ab, bc, t)    bccd = Linerp(bc, cd, t)
   z = Linerp(abbc, bccd, t)

Every interpolation step truncates toward zero. As a consequence every
intermediate point lies within the bounding box of its two operands, and the
evaluated point lies within the bounding box of the control points.

Usage

   b := cubic.New(intbez.P(0, 0), intbez.P(1023, 0), intbez.P(0, 1023), intbez.P(1023, 1023))
   z := b.Eval(511)     // (511,510)

A curve value never changes after construction; Eval works on copies of the
control points. Parameters outside [0,1023] are not rejected. They extrapolate
the curve beyond its end points.

In MetaPost notation the curve above prints as

   (0,0) .. controls (1023,0) and (0,1023) .. (1023,1023)

*/
package cubic
