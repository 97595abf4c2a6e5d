package mongostore

import (
	"regexp"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestContainsAnyQuotesSearch(t *testing.T) {
	got := containsAny("50.5 (a)", "campName", "campFees")
	if len(got) != 1 || got[0].Key != "$or" {
		t.Fatalf("containsAny() = %v, want a single $or", got)
	}
	clauses, ok := got[0].Value.(bson.A)
	if !ok || len(clauses) != 2 {
		t.Fatalf("$or = %v, want two clauses", got[0].Value)
	}

	for i, field := range []string{"campName", "campFees"} {
		clause := clauses[i].(bson.D)
		if clause[0].Key != field {
			t.Errorf("clause %d key = %q, want %q", i, clause[0].Key, field)
		}
		re := clause[0].Value.(primitive.Regex)
		if re.Options != "i" {
			t.Errorf("clause %d options = %q, want i", i, re.Options)
		}
		compiled := regexp.MustCompile("(?i)" + re.Pattern)
		if !compiled.MatchString("fee 50.5 (A) due") {
			t.Errorf("pattern %q does not match the literal text", re.Pattern)
		}
		if compiled.MatchString("5055 a") {
			t.Errorf("pattern %q treats metacharacters as regex", re.Pattern)
		}
	}
}

func TestInsertedHex(t *testing.T) {
	oid := primitive.NewObjectID()
	if got := insertedHex(oid); got != oid.Hex() {
		t.Errorf("insertedHex(ObjectID) = %q, want %q", got, oid.Hex())
	}
	if got := insertedHex("not-an-oid"); got != "" {
		t.Errorf("insertedHex(string) = %q, want empty", got)
	}
}
