package simulator

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Tejaraju0/MealMate-Fullstack-ML/internal/cloudwriter"
	"github.com/Tejaraju0/MealMate-Fullstack-ML/internal/models"
	"github.com/Tejaraju0/MealMate-Fullstack-ML/internal/output"
	"github.com/Tejaraju0/MealMate-Fullstack-ML/internal/simulator/producers"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

// RecordWriter is the sink the simulator streams generated records into.
type RecordWriter interface {
	Write(record *models.ObservationRecord) error
	Close() error
}

type CSVOutput struct {
	file   *os.File
	writer *csv.Writer
}

func NewCSVOutput(path string) (*CSVOutput, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, err
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(file)
	if err := w.Write(models.DatasetColumns); err != nil {
		_ = file.Close()
		return nil, err
	}
	return &CSVOutput{file: file, writer: w}, nil
}

func (c *CSVOutput) Write(record *models.ObservationRecord) error {
	return c.writer.Write(record.CSVRow())
}

func (c *CSVOutput) Close() error {
	c.writer.Flush()
	if err := c.writer.Error(); err != nil {
		_ = c.file.Close()
		return err
	}
	return c.file.Close()
}

type JSONOutput struct {
	file *os.File
}

func NewJSONOutput(path string) (*JSONOutput, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, err
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &JSONOutput{file: file}, nil
}

func (j *JSONOutput) Write(record *models.ObservationRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	if _, err := j.file.Write(data); err != nil {
		return err
	}
	_, err = j.file.WriteString("\n")
	return err
}

func (j *JSONOutput) Close() error {
	return j.file.Close()
}

type ParquetOutput struct {
	fw source.ParquetFile
	pw *writer.ParquetWriter
}

func NewParquetOutput(path string) (*ParquetOutput, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, err
		}
	}
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create local file writer: %w", err)
	}

	pw, err := writer.NewParquetWriter(fw, new(models.ObservationRecord), 4)
	if err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to create ParquetWriter: %w", err)
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	return &ParquetOutput{fw: fw, pw: pw}, nil
}

func (p *ParquetOutput) Write(record *models.ObservationRecord) error {
	if err := p.pw.Write(*record); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

func (p *ParquetOutput) Close() error {
	if err := p.pw.WriteStop(); err != nil {
		_ = p.fw.Close()
		return err
	}
	return p.fw.Close()
}

type KafkaOutput struct {
	producer *producers.SaramaProducer
	topic    string
}

func (k *KafkaOutput) Write(record *models.ObservationRecord) error {
	msg, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return k.producer.WriteMessage(k.topic, msg)
}

func (k *KafkaOutput) Close() error {
	return k.producer.Close()
}

type ConsoleOutput struct{}

func (c *ConsoleOutput) Write(record *models.ObservationRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(os.Stdout, "%s\n", data); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	return nil
}

func (c *ConsoleOutput) Close() error {
	return nil
}

func (s *Simulator) determineOutputDestination() (RecordWriter, error) {
	switch s.Config.OutputFormat {
	case "csv":
		return NewCSVOutput(s.Config.OutputPath)
	case "json":
		return NewJSONOutput(s.Config.OutputPath)
	case "parquet":
		return NewParquetOutput(s.Config.OutputPath)
	case "kafka":
		producer, err := producers.NewSaramaProducer(s.Config.KafkaBrokerList, s.Config.KafkaSessionTimeoutMs)
		if err != nil {
			return nil, err
		}
		return &KafkaOutput{producer: producer, topic: s.Config.KafkaTopic}, nil
	case "postgres":
		return output.NewPostgresWriter(context.Background(), &s.Config.Database)
	case "console", "":
		return &ConsoleOutput{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", s.Config.OutputFormat)
	}
}

// uploadOutput pushes the finished dataset file to cloud storage when the
// run used a file-backed sink and cloud upload is enabled.
func (s *Simulator) uploadOutput() error {
	if !s.Config.CloudStorage.Enabled {
		return nil
	}
	switch s.Config.OutputFormat {
	case "csv", "json", "parquet":
	default:
		return nil
	}

	uploader, err := cloudwriter.NewUploader(&s.Config.CloudStorage)
	if err != nil {
		return fmt.Errorf("creating cloud uploader: %w", err)
	}

	file, err := os.Open(s.Config.OutputPath)
	if err != nil {
		return fmt.Errorf("opening dataset for upload: %w", err)
	}
	defer file.Close()

	key := filepath.Join(s.Config.CloudStorage.Prefix, filepath.Base(s.Config.OutputPath))
	if err := uploader.Upload(context.Background(), s.Config.CloudStorage.BucketName, key, file); err != nil {
		return fmt.Errorf("uploading dataset: %w", err)
	}
	return nil
}
