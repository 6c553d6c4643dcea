/*
Package scroll generates whimsical scroll titles in the style of the game
Rogue: short phrases of pseudo-random nonsense words such as
"potrhov sunsna glenzok" or "wahzeb of valturs".

Words are synthesized by concatenating weighted draws from a syllable
table, titles by joining a bounded number of words, occasionally with the
connector word "of" in an interior position. A Generator is configured
once with count bounds and validated at construction; generation itself
never fails. The package also computes the exact size of the configured
generation space and its information content in bits.

By default a Generator draws from a userspace CSPRNG, so titles are
unpredictable across runs. Seed one with WithSeed for reproducible
output.
*/
package scroll
