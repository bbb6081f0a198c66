package services

import (
	"reflect"
	"testing"

	"rongshu/internal/models"
)

func TestSelectRelatedSameAuthor(t *testing.T) {
	s := &MemoryService{Threshold: 0.2}

	p1 := models.Post{ID: 1, UserID: 7, Content: "I love python programming and fastapi development"}
	p2 := models.Post{ID: 2, UserID: 7, Content: "I love python programming especially with fastapi"}

	relations := s.SelectRelated(p2, []models.Post{p1})
	if len(relations) != 1 {
		t.Fatalf("Expected exactly one relation, got %d", len(relations))
	}

	r := relations[0]
	if r.SourcePostID != 2 || r.TargetPostID != 1 {
		t.Errorf("Expected edge 2 -> 1, got %d -> %d", r.SourcePostID, r.TargetPostID)
	}
	if r.SimilarityScore <= 0.2 {
		t.Errorf("Expected similarity above threshold, got %f", r.SimilarityScore)
	}
	if r.RelationType != models.RelationTypeSemantic {
		t.Errorf("Expected semantic relation, got %s", r.RelationType)
	}
}

func TestSelectRelatedCrossAuthorExcluded(t *testing.T) {
	s := &MemoryService{Threshold: 0.2}

	source := models.Post{ID: 2, UserID: 7, Content: "I love python programming especially with fastapi"}
	// 内容完全相同但属于其他作者，不得建边
	other := models.Post{ID: 3, UserID: 8, Content: "I love python programming especially with fastapi"}

	if relations := s.SelectRelated(source, []models.Post{other}); len(relations) != 0 {
		t.Errorf("Expected no cross-author edges, got %d", len(relations))
	}
}

func TestSelectRelatedSkipsSelf(t *testing.T) {
	s := &MemoryService{Threshold: 0.2}

	source := models.Post{ID: 2, UserID: 7, Content: "same text here"}
	if relations := s.SelectRelated(source, []models.Post{source}); len(relations) != 0 {
		t.Errorf("Expected no self-loop, got %d", len(relations))
	}
}

func TestSelectRelatedBelowThreshold(t *testing.T) {
	s := &MemoryService{Threshold: 0.2}

	source := models.Post{ID: 2, UserID: 7, Content: "alpha beta gamma delta epsilon"}
	unrelated := models.Post{ID: 1, UserID: 7, Content: "completely different words entirely everywhere"}

	if relations := s.SelectRelated(source, []models.Post{unrelated}); len(relations) != 0 {
		t.Errorf("Expected no edge below threshold, got %d", len(relations))
	}
}

func TestSelectRelatedDeterministic(t *testing.T) {
	s := &MemoryService{Threshold: 0.2}

	source := models.Post{ID: 5, UserID: 7, Content: "go concurrency patterns with channels and goroutines"}
	candidates := []models.Post{
		{ID: 1, UserID: 7, Content: "learning go concurrency patterns using channels"},
		{ID: 2, UserID: 7, Content: "my favorite soup recipes for winter"},
		{ID: 3, UserID: 9, Content: "go concurrency patterns with channels and goroutines"},
	}

	first := s.SelectRelated(source, candidates)
	second := s.SelectRelated(source, candidates)

	if !reflect.DeepEqual(first, second) {
		t.Error("Expected repeated selection to produce identical edges")
	}
	if len(first) != 1 || first[0].TargetPostID != 1 {
		t.Errorf("Expected single edge to post 1, got %+v", first)
	}
}
