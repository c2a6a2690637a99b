// Package unitconv converts suffixed numeric strings from repository
// configuration files into absolute quantities.
//
// Two converters are provided:
//   - Interval turns time spans such as "30", "2m", or "1.5h" into seconds
//     (suffixes s, m, h, d).
//   - Bandwidth turns rates such as "500k" or "10M" into bytes
//     (suffixes k, m, g, base 1024).
//
// Both read the longest leading floating-point magnitude and then interpret
// whatever remains as a single-character unit, mirroring strtod cursor
// semantics. Suffixes are case-insensitive and results truncate toward zero.
package unitconv
