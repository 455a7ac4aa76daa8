package sparse

import "testing"

func TestEmptyMatrix(t *testing.T) {
	M := NewIntMatrix(3, 4, DefaultNullValue)
	if M.M() != 3 || M.N() != 4 {
		t.Errorf("expected matrix to be of size 3x4, is %dx%d", M.M(), M.N())
	}
	if M.ValueCount() != 0 {
		t.Errorf("fresh matrix should hold no values, holds %d", M.ValueCount())
	}
	if M.Value(1, 1) != M.NullValue() {
		t.Errorf("empty cell should read as null-value")
	}
}

func TestSetAndGet(t *testing.T) {
	M := NewIntMatrix(5, 5, -1)
	M.Set(2, 3, 4711)
	if v := M.Value(2, 3); v != 4711 {
		t.Errorf("expected M[2,3] = 4711, is %d", v)
	}
	if v := M.Value(3, 2); v != -1 {
		t.Errorf("expected M[3,2] to be null, is %d", v)
	}
	if M.ValueCount() != 1 {
		t.Errorf("expected 1 value in matrix, have %d", M.ValueCount())
	}
}

func TestOverwrite(t *testing.T) {
	M := NewIntMatrix(5, 5, -1)
	M.Set(1, 1, 7)
	M.Set(1, 1, 8)
	if v := M.Value(1, 1); v != 8 {
		t.Errorf("expected M[1,1] = 8 after overwrite, is %d", v)
	}
	if M.ValueCount() != 1 {
		t.Errorf("overwrite must not grow the matrix, count is %d", M.ValueCount())
	}
}

func TestInsertOrder(t *testing.T) {
	M := NewIntMatrix(10, 10, -1)
	M.Set(5, 5, 3)
	M.Set(0, 1, 1)
	M.Set(2, 9, 2)
	checks := [][3]int{{5, 5, 3}, {0, 1, 1}, {2, 9, 2}}
	for _, c := range checks {
		if v := M.Value(c[0], c[1]); int(v) != c[2] {
			t.Errorf("expected M[%d,%d] = %d, is %d", c[0], c[1], c[2], v)
		}
	}
	var rows []int
	M.Each(func(i, j int, v int32) {
		rows = append(rows, i)
	})
	if len(rows) != 3 || rows[0] != 0 || rows[1] != 2 || rows[2] != 5 {
		t.Errorf("Each should visit entries in row-major order, visited rows %v", rows)
	}
}
