package services

import (
	"encoding/json"
	"path/filepath"
	"reflect"
	"testing"
)

func TestTrainBayesModelDeterministic(t *testing.T) {
	m1 := trainBayesModel(bootstrapCorpus)
	m2 := trainBayesModel(bootstrapCorpus)

	j1, _ := json.Marshal(m1)
	j2, _ := json.Marshal(m2)
	if string(j1) != string(j2) {
		t.Error("Expected identical models from identical corpus")
	}
}

func TestBayesPredict(t *testing.T) {
	m := trainBayesModel(bootstrapCorpus)

	if m.predictToxic("thanks for the helpful post, great work") {
		t.Error("Expected clean text to not be toxic")
	}
	if !m.predictToxic("shut up you worthless stupid idiot") {
		t.Error("Expected insulting text to be toxic")
	}
	if m.predictToxic("") {
		t.Error("Expected empty text to not be toxic")
	}
}

func TestBayesModelPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")

	m := trainBayesModel(bootstrapCorpus)
	if err := m.saveToFile(path); err != nil {
		t.Fatalf("saveToFile failed: %v", err)
	}

	loaded, err := loadBayesModel(path)
	if err != nil {
		t.Fatalf("loadBayesModel failed: %v", err)
	}

	if !reflect.DeepEqual(m, loaded) {
		t.Error("Expected loaded model to equal saved model")
	}
	if loaded.predictToxic("shut up you worthless stupid idiot") != m.predictToxic("shut up you worthless stupid idiot") {
		t.Error("Expected loaded model to predict identically")
	}
}
