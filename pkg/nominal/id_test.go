package nominal

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"reflect"
	"runtime"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type (
	userMarker   struct{}
	postMarker   struct{}
	freshMarker  struct{}
	userAMarker  struct{}
	userBMarker  struct{}
	rebindMarker struct{}
	churnMarker  struct{}
	snakeMarker  struct{}
	racingMarker struct{}
)

var (
	userIDs  = MustBind[userMarker]("user")
	postIDs  = MustBind[postMarker]("post")
	freshIDs = MustBind[freshMarker]("")
)

// --- Binding ---

func TestBind_TagIsFixed(t *testing.T) {
	assert.Equal(t, "user", userIDs.Tag())
	assert.Equal(t, "user", userIDs.From("123").Tag())
	assert.Equal(t, "Id<user>", userIDs.Name())
	assert.Equal(t, "Id", Base.Name())
	assert.Equal(t, "", Base.Tag())
}

func TestBind_SameTagDistinctMarkers(t *testing.T) {
	a := MustBind[userAMarker]("user")
	b := MustBind[userBMarker]("user")

	idA := a.From("1")
	idB := b.From("1")

	assert.NotEqual(t, reflect.TypeOf(idA), reflect.TypeOf(idB))
	assert.Equal(t, idA.String(), idB.String())
	assert.NotSame(t, userIDs.From("1"), idA)
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 1, b.Len())
	runtime.KeepAlive(idA)
	runtime.KeepAlive(idB)
}

func TestBind_Rebind(t *testing.T) {
	first, err := Bind[rebindMarker]("order")
	require.NoError(t, err)

	again, err := Bind[rebindMarker]("order")
	require.NoError(t, err)
	assert.Same(t, first, again)

	_, err = Bind[rebindMarker]("invoice")
	assert.ErrorIs(t, err, ErrAlreadyBound)

	assert.Panics(t, func() { MustBind[rebindMarker]("") })
}

// --- Interning ---

func TestFrom_InternsSameTagAndValue(t *testing.T) {
	a := From("123", "user")
	b := From("123", "user")
	assert.Same(t, a, b)
}

func TestFrom_DifferentTagDifferentInstance(t *testing.T) {
	a := From("123", "user")
	b := From("123", "post")
	assert.NotSame(t, a, b)
}

func TestFrom_DifferentValueDifferentInstance(t *testing.T) {
	a := From("123", "user")
	b := From("456", "user")
	assert.NotSame(t, a, b)
}

func TestFrom_CompositeKeysDoNotCollide(t *testing.T) {
	// Both display as "a_b_c" but are different (tag, key) pairs.
	a := From("b_c", "a")
	b := From("c", "a_b")

	assert.Equal(t, a.String(), b.String())
	assert.NotSame(t, a, b)
	assert.Equal(t, "b_c", a.Raw())
	assert.Equal(t, "c", b.Raw())
}

func TestKind_BoundInterns(t *testing.T) {
	a := userIDs.From("123")
	b := userIDs.From("123")
	assert.Same(t, a, b)
}

func TestKind_SeparateCaches(t *testing.T) {
	user := userIDs.From("123")
	post := postIDs.From("123")

	assert.Equal(t, "user", user.Tag())
	assert.Equal(t, "post", post.Tag())
	assert.NotEqual(t, reflect.TypeOf(user), reflect.TypeOf(post))
	assert.NotSame(t, Base.FromWithTag("123", "user"), user)
}

func TestKind_UntaggedMarker(t *testing.T) {
	a := freshIDs.From("123")
	b := freshIDs.From("123")
	assert.Same(t, a, b)
	assert.Equal(t, "", a.Tag())
	assert.Equal(t, "123", a.String())

	tagged := freshIDs.FromWithTag("123", "user")
	assert.NotSame(t, a, tagged)
	assert.Equal(t, "user_123", tagged.String())
}

func TestKind_BoundIgnoresAdHocTag(t *testing.T) {
	a := userIDs.FromWithTag("123", "post")
	b := userIDs.From("123")
	assert.Same(t, a, b)
	assert.Equal(t, "user", a.Tag())
}

func TestKind_NumericKeys(t *testing.T) {
	huge, _ := new(big.Int).SetString("9007199254740993", 10)

	assert.Equal(t, "abc", From("abc", "x").Raw())
	assert.Equal(t, "42", FromInt(42, "x").Raw())
	assert.Equal(t, "9007199254740993", FromBig(huge, "x").Raw())

	n := FromInt(42, "x")
	assert.Same(t, n, FromBig(big.NewInt(42), "x"))
	assert.NotSame(t, n, From("42", "x"))
	assert.True(t, n.Key().IsNumeric())

	assert.Same(t, userIDs.FromInt(7), userIDs.FromKey(IntKey(7)))
	assert.Equal(t, "user_7", userIDs.FromBig(big.NewInt(7)).String())
}

func TestKind_ConcurrentFrom(t *testing.T) {
	kind := MustBind[racingMarker]("race")

	const goroutines = 32
	results := make([]*ID[racingMarker], goroutines)
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			results[g] = kind.From("same")
		}(g)
	}
	wg.Wait()

	for _, r := range results {
		assert.Same(t, results[0], r)
	}
}

func TestKind_ReclaimsUnreachable(t *testing.T) {
	kind := MustBind[churnMarker]("churn")

	func() {
		for i := 0; i < 50; i++ {
			_ = kind.From(strconv.Itoa(i))
		}
	}()

	require.Eventually(t, func() bool {
		runtime.GC()
		return kind.Len() == 0
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, uint64(50), kind.Stats().Evictions)
}

// --- FromTagged ---

func TestFromTagged(t *testing.T) {
	id, err := userIDs.FromTagged("user_123")
	require.NoError(t, err)
	assert.Same(t, userIDs.From("123"), id)

	_, err = postIDs.FromTagged("user_123")
	require.ErrorIs(t, err, ErrTagMismatch)

	var mismatch *TagMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, "user_123", mismatch.Input)
	assert.Equal(t, "post", mismatch.Expected)
	assert.Contains(t, err.Error(), `"post"`)
	assert.Contains(t, err.Error(), `"user_123"`)
}

func TestFromTagged_EdgeCases(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantKey string
		wantErr bool
	}{
		{"plain", "user_123", "123", false},
		{"empty key", "user_", "", false},
		{"no separator", "123", "", true},
		{"empty", "", "", true},
		{"key contains separator", "user_a_b", "", true},
		{"other tag", "post_123", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := userIDs.FromTagged(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrTagMismatch)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, id.Raw())
		})
	}
}

func TestFromTagged_TagContainsSeparator(t *testing.T) {
	snake := MustBind[snakeMarker]("line_item")
	id, err := snake.FromTagged("line_item_9")
	require.NoError(t, err)
	assert.Equal(t, "9", id.Raw())
	assert.Same(t, snake.From("9"), id)
}

func TestFromTagged_Untagged(t *testing.T) {
	id, err := FromTagged("user_123")
	require.NoError(t, err)
	assert.Equal(t, "user_123", id.Raw())
	assert.Equal(t, "", id.Tag())
	assert.Same(t, From("user_123", ""), id)
}

// --- Display ---

func TestID_Display(t *testing.T) {
	id := From("123", "user")

	assert.Equal(t, "user_123", id.String())
	assert.Equal(t, "123", From("123", "").String())
	assert.Equal(t, "123", id.Raw())

	v, err := id.Value()
	require.NoError(t, err)
	assert.Equal(t, "123", v)

	data, err := json.Marshal(id)
	require.NoError(t, err)
	assert.Equal(t, `"user_123"`, string(data))

	text, err := id.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "user_123", string(text))

	data, err = json.Marshal(map[string]any{"owner": userIDs.From("9")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"owner":"user_9"}`, string(data))
}

func TestID_GoString(t *testing.T) {
	assert.Equal(t, "Id(x_1)", fmt.Sprintf("%#v", From("1", "x")))
	assert.Equal(t, "Id<user>(user_1)", fmt.Sprintf("%#v", userIDs.From("1")))
	assert.Equal(t, "nominal.freshMarker(1)", fmt.Sprintf("%#v", freshIDs.From("1")))
	assert.Equal(t, "user_1", fmt.Sprintf("%v", userIDs.From("1")))
}

func TestID_Kind(t *testing.T) {
	assert.Same(t, userIDs, userIDs.From("1").Kind())
	assert.Same(t, Base, From("1", "x").Kind())
}

// --- Benchmarks ---

func BenchmarkKind_FromHit(b *testing.B) {
	held := userIDs.From("bench")
	for b.Loop() {
		userIDs.From("bench")
	}
	runtime.KeepAlive(held)
}
