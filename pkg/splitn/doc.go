/*
Package splitn splits strings and byte slices into an exact number of pieces.

Unlike strings.SplitN, which returns however many pieces it finds, every
function here either produces exactly n pieces or reports absence: fewer than
n-1 separators means no result at all. That makes destructuring fixed-shape
input a single call:

	parts, ok := splitn.String("user:group:home", ":", 3)
	if !ok {
		// input did not have exactly-splittable shape
	}
	user, group, home := parts[0], parts[1], parts[2]

The last piece always absorbs any remaining separators:

	parts, _ := splitn.String("a,b,c", ",", 2) // ["a" "b,c"]

# Reverse Splitting

The R-prefixed variants cut at the last n-1 separators instead of the first,
which is the natural way to peel a suffix. Pieces come back in left-to-right
order either way:

	parts, _ := splitn.RString("a,b,c", ",", 2) // ["a,b" "c"]

# Variants

String/RString work on strings with a substring separator. Bytes/RBytes take
a multi-byte delimiter, Byte/RByte a single byte, and BytesFunc/RBytesFunc a
per-byte predicate. All pieces alias the input; nothing is copied.

n == 0 yields an empty present result without looking at the input. A
negative n, or an empty separator where one is required, reports absence.
*/
package splitn
