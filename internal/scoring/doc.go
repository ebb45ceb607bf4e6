// Package scoring computes adjusted fantasy points for parsed player tables.
//
// A Rule is an ordered list of column weights. Each position belongs to a
// family that decides what happens beyond the plain weighted sum:
//
//   - QB: weighted sum only.
//   - Flex (RB, WR): first-down columns missing from the source are derived
//     from yardage, one first down per 20 yards.
//   - TE: the same derivation for receiving first downs.
//   - DST: a step bonus keyed on points allowed per game.
//
// Kickers have no rule in the default league and pass through unscored.
package scoring
