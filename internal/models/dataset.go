package models

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ReadDatasetCSV loads a generated dataset file back into memory. The file
// must carry the DatasetColumns header produced by the simulator.
func ReadDatasetCSV(filePath string) ([]*ObservationRecord, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading dataset header: %w", err)
	}
	if len(header) != len(DatasetColumns) {
		return nil, fmt.Errorf("dataset has %d columns, expected %d", len(header), len(DatasetColumns))
	}

	var records []*ObservationRecord
	for line := 2; ; line++ {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		rec, err := parseDatasetRow(fields)
		if err != nil {
			return nil, fmt.Errorf("dataset line %d: %w", line, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func parseDatasetRow(fields []string) (*ObservationRecord, error) {
	prepared, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, fmt.Errorf("preparedQuantity: %w", err)
	}
	sold, err := strconv.Atoi(fields[6])
	if err != nil {
		return nil, fmt.Errorf("soldQuantity: %w", err)
	}
	wasted, err := strconv.Atoi(fields[7])
	if err != nil {
		return nil, fmt.Errorf("wastedQuantity: %w", err)
	}
	wastePct, err := strconv.ParseFloat(fields[8], 64)
	if err != nil {
		return nil, fmt.Errorf("wastePercentage: %w", err)
	}
	specialEvent, err := strconv.ParseBool(fields[11])
	if err != nil {
		return nil, fmt.Errorf("specialEvent: %w", err)
	}
	revenue, err := strconv.ParseFloat(fields[12], 64)
	if err != nil {
		return nil, fmt.Errorf("revenue: %w", err)
	}
	loss, err := strconv.ParseFloat(fields[13], 64)
	if err != nil {
		return nil, fmt.Errorf("potentialRevenueLoss: %w", err)
	}

	return &ObservationRecord{
		RestaurantID:         fields[0],
		ItemName:             fields[1],
		Category:             fields[2],
		Date:                 fields[3],
		DayOfWeek:            fields[4],
		PreparedQuantity:     int32(prepared),
		SoldQuantity:         int32(sold),
		WastedQuantity:       int32(wasted),
		WastePercentage:      wastePct,
		MealPeriod:           fields[9],
		Weather:              fields[10],
		SpecialEvent:         specialEvent,
		Revenue:              revenue,
		PotentialRevenueLoss: loss,
		Notes:                fields[14],
	}, nil
}
