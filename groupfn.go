/*
Package groupfn implements the exact piecewise-affine function algebra of the
Gomory-Johnson group relaxation, together with the finite-dimensional
extremality test: restriction of a function to a finite cyclic group, the
sparse additivity linear system on that grid, its exact null space, and the
lifting of null-space vectors back to perturbation functions on [0,1].
All arithmetic is exact; no verdict depends on floating point.
*/
package groupfn
