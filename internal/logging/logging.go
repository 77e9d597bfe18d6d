package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New crea el logger del proceso con el nivel configurado.
// Escribe a stdout porque el runtime de contenedores recolecta desde ahí.
func New(level logrus.Level) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return logger
}
