package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/Tejaraju0/MealMate-Fullstack-ML/internal/models"
	"github.com/Tejaraju0/MealMate-Fullstack-ML/internal/simulator"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Generate a synthetic restaurant waste dataset",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		sim := simulator.NewSimulator(cfg)
		if err := sim.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Simulation failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	simulateCmd.Flags().Int("seed", 42, "Random seed for generation")
	simulateCmd.Flags().String("start-date", time.Now().AddDate(-1, 0, 0).Format(time.RFC3339), "Start date for generation")
	simulateCmd.Flags().String("end-date", time.Now().Format(time.RFC3339), "End date for generation")
	simulateCmd.Flags().Int("num-restaurants", 10, "Number of restaurants to simulate")
	simulateCmd.Flags().Float64("skip-probability", 0.15, "Probability an item is not offered on a given day")
	simulateCmd.Flags().String("output-format", "csv", "Output format (console, csv, json, parquet, kafka, postgres)")
	simulateCmd.Flags().String("output-path", "data/restaurant_waste.csv", "Output file path for file formats")
	simulateCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	simulateCmd.Flags().String("kafka-topic", "waste_records", "Kafka topic for generated records")

	bindFlag(simulateCmd, "seed", "seed")
	bindFlag(simulateCmd, "start_date", "start-date")
	bindFlag(simulateCmd, "end_date", "end-date")
	bindFlag(simulateCmd, "num_restaurants", "num-restaurants")
	bindFlag(simulateCmd, "skip_probability", "skip-probability")
	bindFlag(simulateCmd, "output_format", "output-format")
	bindFlag(simulateCmd, "output_path", "output-path")
	bindFlag(simulateCmd, "kafka_broker_list", "kafka-broker-list")
	bindFlag(simulateCmd, "kafka_topic", "kafka-topic")

	rootCmd.AddCommand(simulateCmd)
}

func bindFlag(cmd *cobra.Command, key, flag string) {
	if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
		cobra.CheckErr(err)
	}
}
