package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/tuannh982/arith-map/utils/collections"
)

func main() {
	logger := log.WithFields(log.Fields{"demo": "arith-map"})
	logger.Logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	logger.Level = log.InfoLevel
	x := collections.ArithMapOf(
		collections.MapEntry[int]{Key: "a", Value: 1},
		collections.MapEntry[int]{Key: "b", Value: 2},
	)
	y := collections.ArithMapOf(
		collections.MapEntry[int]{Key: "b", Value: 2},
		collections.MapEntry[int]{Key: "c", Value: 3},
	)
	logger.Info("x = ", x)
	logger.Info("y = ", y)
	logger.Info("x + y = ", x.Plus(y))
	logger.Info("x - y = ", x.Minus(y))
	logger.Info("x + 1 = ", x.PlusScalar(1))
	logger.Info("x * 2 = ", x.TimesScalar(2))
	diff := x.Minus(y)
	diff.Prune()
	logger.Info("prune(x - y) = ", diff)
}
