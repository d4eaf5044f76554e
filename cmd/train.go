package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/Tejaraju0/MealMate-Fullstack-ML/internal/features"
	"github.com/Tejaraju0/MealMate-Fullstack-ML/internal/models"
	"github.com/Tejaraju0/MealMate-Fullstack-ML/internal/predictor"
	"github.com/spf13/cobra"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Build feature vocabularies and a baseline waste model from a dataset",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		if err := runTrain(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Training failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	trainCmd.Flags().String("dataset-path", "data/restaurant_waste.csv", "Generated dataset to train from")
	trainCmd.Flags().String("artifact-dir", "models", "Directory for persisted artifacts")

	bindFlag(trainCmd, "dataset_path", "dataset-path")
	bindFlag(trainCmd, "artifact_dir", "artifact-dir")

	rootCmd.AddCommand(trainCmd)
}

func runTrain(cfg *models.Config) error {
	records, err := models.ReadDatasetCSV(cfg.DatasetPath)
	if err != nil {
		return fmt.Errorf("reading dataset %s: %w", cfg.DatasetPath, err)
	}
	log.Printf("Loaded %d records from %s", len(records), cfg.DatasetPath)

	vocabs, err := features.BuildFromRecords(records)
	if err != nil {
		return fmt.Errorf("building vocabularies: %w", err)
	}

	model, err := predictor.Train(records, vocabs)
	if err != nil {
		return fmt.Errorf("fitting baseline model: %w", err)
	}

	if err := os.MkdirAll(cfg.ArtifactDir, os.ModePerm); err != nil {
		return err
	}
	if err := vocabs.Save(vocabularyPath(cfg)); err != nil {
		return fmt.Errorf("saving vocabulary artifact: %w", err)
	}
	if err := model.Save(modelPath(cfg)); err != nil {
		return fmt.Errorf("saving model artifact: %w", err)
	}

	log.Printf("Artifacts written to %s", cfg.ArtifactDir)
	return nil
}

func vocabularyPath(cfg *models.Config) string {
	return filepath.Join(cfg.ArtifactDir, "feature_vocabulary.json")
}

func modelPath(cfg *models.Config) string {
	return filepath.Join(cfg.ArtifactDir, "waste_model.json")
}
