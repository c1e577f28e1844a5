package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func op(date, tag string) Operation {
	return Operation{Date: date, Type: tag, Amount: AmountOf(10000), Status: StatusOK}
}

func TestSortedDesc(t *testing.T) {
	t.Parallel()

	ops := Operations{
		op("2024-01-01 10:00:00", OpDeposit),
		op("2024-01-03 09:30:00", OpWithdraw),
		op("2024-01-02 23:59:59", OpDeposit),
	}

	got := ops.SortedDesc()

	want := Operations{ops[1], ops[2], ops[0]}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SortedDesc() mismatch (-want +got):\n%s", diff)
	}
}

func TestSortedDescMalformedTimestampFallsBackToReverseOrder(t *testing.T) {
	t.Parallel()

	// One unparsable timestamp degrades the whole list to reverse
	// insertion order, not just the offending entry.
	ops := Operations{
		op("2024-01-01 10:00:00", OpDeposit),
		op("not a date", OpWithdraw),
		op("2024-01-03 09:30:00", OpDeposit),
	}

	got := ops.SortedDesc()

	want := Operations{ops[2], ops[1], ops[0]}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SortedDesc() mismatch (-want +got):\n%s", diff)
	}
}

func TestSortedDescDoesNotMutateReceiver(t *testing.T) {
	t.Parallel()

	ops := Operations{
		op("2024-01-01 10:00:00", OpDeposit),
		op("2024-01-02 10:00:00", OpWithdraw),
	}

	_ = ops.SortedDesc()

	if ops[0].Date != "2024-01-01 10:00:00" {
		t.Errorf("receiver mutated: ops[0].Date = %v", ops[0].Date)
	}
}

func TestFilterByType(t *testing.T) {
	t.Parallel()

	ops := Operations{
		op("2024-01-01 10:00:00", OpDeposit),
		op("2024-01-02 10:00:00", OpWithdraw),
		op("2024-01-03 10:00:00", OpDeposit),
	}

	got := ops.FilterByType(OpDeposit)

	want := Operations{ops[0], ops[2]}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FilterByType(%q) mismatch (-want +got):\n%s", OpDeposit, diff)
	}

	if got := ops.FilterByType(OpLoan); len(got) != 0 {
		t.Errorf("FilterByType(%q) = %v, want empty", OpLoan, got)
	}
}
