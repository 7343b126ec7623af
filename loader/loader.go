package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrParse indicates malformed input at a specific line.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrParse struct {
	Line  int
	Token string
	cause error
}

func (e *ErrParse) Error() string {
	return fmt.Sprintf("parse error at line %d: %q", e.Line, e.Token)
}

func (e *ErrParse) Unwrap() error { return e.cause }

// EdgeList reads whitespace-separated edges, one per line. Blank lines
// and '#' comment lines are skipped. Lines with a single node ID are a
// parse error: an edge needs at least two stubs.
func EdgeList(r io.Reader) ([][]int64, error) {
	var edges [][]int64

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for sc.Scan() {
		line++

		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if len(fields) < 2 {
			return nil, &ErrParse{Line: line, Token: fields[0]}
		}

		edge := make([]int64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, &ErrParse{Line: line, Token: f, cause: err}
			}
			edge[i] = v
		}
		edges = append(edges, edge)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return edges, nil
}

// EdgeListFile reads an edge list from path.
func EdgeListFile(path string) ([][]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return EdgeList(f)
}

// Simplices reads the paired simplex-stream format: nverts holds one
// edge size per line, simplices holds every node ID in order, one per
// line, consumed greedily by the declared sizes. A size below two or a
// simplices stream that is too short is a parse error against the
// nverts line that declared the edge.
func Simplices(nverts, simplices io.Reader) ([][]int64, error) {
	sizes, err := intColumn(nverts)
	if err != nil {
		return nil, err
	}
	ids, err := intColumn(simplices)
	if err != nil {
		return nil, err
	}

	edges := make([][]int64, 0, len(sizes))
	pos := 0
	for line, n := range sizes {
		if n < 2 {
			return nil, &ErrParse{Line: line + 1, Token: strconv.FormatInt(n, 10)}
		}
		if pos+int(n) > len(ids) {
			return nil, &ErrParse{Line: line + 1, Token: strconv.FormatInt(n, 10), cause: io.ErrUnexpectedEOF}
		}
		edge := make([]int64, n)
		copy(edge, ids[pos:pos+int(n)])
		edges = append(edges, edge)
		pos += int(n)
	}
	return edges, nil
}

// SimplicesFiles reads the simplex-stream format from a file pair.
func SimplicesFiles(nvertsPath, simplicesPath string) ([][]int64, error) {
	nf, err := os.Open(nvertsPath)
	if err != nil {
		return nil, err
	}
	defer nf.Close()

	sf, err := os.Open(simplicesPath)
	if err != nil {
		return nil, err
	}
	defer sf.Close()

	return Simplices(nf, sf)
}

func intColumn(r io.Reader) ([]int64, error) {
	var vals []int64

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++

		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, &ErrParse{Line: line, Token: s, cause: err}
		}
		vals = append(vals, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return vals, nil
}
