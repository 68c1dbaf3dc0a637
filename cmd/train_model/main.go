package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"flightdelay/db"
	"flightdelay/flights"
	"flightdelay/ml"
	"flightdelay/pipeline"
)

func main() {
	csvPath := flag.String("csv", "", "historical dataset CSV (Latin-1 encoded)")
	dbPath := flag.String("db", "", "SQLite flight store path")
	modelPath := flag.String("model_path", "./models/delay.model", "model artifact output path")
	testRatio := flag.Float64("test_ratio", 0.2, "held-out evaluation ratio")
	store := flag.Bool("store", false, "persist cleaned CSV rows into the flight store")
	flag.Parse()

	zl, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zl.Sync()

	records, err := loadRecords(*csvPath, *dbPath, zl)
	if err != nil {
		zl.Fatal("failed to load training data", zap.Error(err))
	}

	cleaner := pipeline.NewDataCleaner()
	cleaned, stats := cleaner.Clean(records)
	zl.Info("dataset cleaned",
		zap.Int64("processed", stats.TotalProcessed),
		zap.Int64("passed", stats.Passed),
		zap.Int64("rejected", stats.Rejected))
	if len(cleaned) == 0 {
		zl.Fatal("no usable training rows after cleaning")
	}

	if *store && *csvPath != "" && *dbPath != "" {
		if err := db.SaveFlights(cleaned); err != nil {
			zl.Fatal("failed to store cleaned rows", zap.Error(err))
		}
		zl.Info("cleaned rows stored", zap.Int("rows", len(cleaned)))
	}

	labels, err := ml.GenerateLabels(cleaned)
	if err != nil {
		zl.Fatal("failed to derive labels", zap.Error(err))
	}
	features := ml.Encode(cleaned)

	trainX, trainY, testX, testY := splitDataset(features, labels, *testRatio)

	if err := os.MkdirAll(filepath.Dir(*modelPath), 0o755); err != nil {
		zl.Fatal("failed to create model dir", zap.Error(err))
	}

	model := ml.NewLogisticRegression()
	model.BindArtifact(*modelPath)
	if err := model.Train(trainX, trainY); err != nil {
		zl.Fatal("training failed", zap.Error(err))
	}

	accuracy, precision, recall := evaluateModel(model, testX, testY)
	zl.Info("model trained",
		zap.String("artifact", *modelPath),
		zap.Int("train_rows", len(trainX)),
		zap.Int("test_rows", len(testX)),
		zap.Float64("accuracy", accuracy),
		zap.Float64("precision", precision),
		zap.Float64("recall", recall))
}

func loadRecords(csvPath, dbPath string, zl *zap.Logger) ([]flights.FlightRecord, error) {
	if dbPath != "" {
		if err := db.InitDB(dbPath); err != nil {
			return nil, err
		}
	}
	if csvPath != "" {
		records, err := pipeline.ReadCSV(csvPath)
		if err != nil {
			return nil, err
		}
		zl.Info("dataset read", zap.String("csv", csvPath), zap.Int("rows", len(records)))
		return records, nil
	}
	records, err := db.QueryFlights("", 0, 0)
	if err != nil {
		return nil, err
	}
	zl.Info("dataset read", zap.String("db", dbPath), zap.Int("rows", len(records)))
	return records, nil
}

func splitDataset(features [][]float64, labels []int, testRatio float64) (trainX [][]float64, trainY []int, testX [][]float64, testY []int) {
	if testRatio <= 0 || testRatio >= 1 {
		testRatio = 0.2
	}

	split := int(float64(len(features)) * (1 - testRatio))
	for i := range features {
		if i < split {
			trainX = append(trainX, features[i])
			trainY = append(trainY, labels[i])
		} else {
			testX = append(testX, features[i])
			testY = append(testY, labels[i])
		}
	}
	return trainX, trainY, testX, testY
}

func evaluateModel(model *ml.LogisticRegression, testX [][]float64, testY []int) (accuracy, precision, recall float64) {
	if len(testX) == 0 {
		return 0, 0, 0
	}

	predicted, err := model.Predict(testX)
	if err != nil {
		return 0, 0, 0
	}

	var correct, truePositive, predictedPositive, actualPositive int
	for i, label := range predicted {
		if label == testY[i] {
			correct++
		}
		if label == 1 {
			predictedPositive++
		}
		if testY[i] == 1 {
			actualPositive++
			if label == 1 {
				truePositive++
			}
		}
	}

	accuracy = float64(correct) / float64(len(testX))
	if predictedPositive > 0 {
		precision = float64(truePositive) / float64(predictedPositive)
	}
	if actualPositive > 0 {
		recall = float64(truePositive) / float64(actualPositive)
	}
	return accuracy, precision, recall
}
