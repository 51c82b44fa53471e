package clog

import "fmt"
import "strings"
import "time"

import "github.com/sirgallo/raftbid/pkg/utils"


func New(name string) *Log {
	return &Log{ Name: name }
}

func (cLog *Log) Debug(msg ...interface{}) {
	cLog.formatOutput(Debug, msg)
}

func (cLog *Log) Info(msg ...interface{}) {
	cLog.formatOutput(Info, msg)
}

func (cLog *Log) Warn(msg ...interface{}) {
	cLog.formatOutput(Warn, msg)
}

func (cLog *Log) Error(msg ...interface{}) {
	cLog.formatOutput(Error, msg)
}

func (cLog *Log) formatOutput(level LogLevel, msg []interface{}) {
	currTime := time.Now()
	formattedTime := currTime.Format("2006-01-02 15:04:05.000")

	encodedMsg := func() string {
		encodeTransform := func(chunk interface{}) string {
			if asStr, ok := chunk.(string); ok { return asStr }

			encoded, encErr := utils.EncodeStructToString[interface{}](chunk)
			if encErr != nil { return fmt.Sprintf("%v", chunk) }

			return encoded
		}

		encodedChunks := utils.Map[interface{}, string](msg, encodeTransform)
		return strings.Join(encodedChunks, " ")
	}()

	color := func() LogColor {
		switch level {
			case Debug: return DebugColor
			case Error: return ErrorColor
			case Warn: return WarnColor
			default: return InfoColor
		}
	}()

	fmt.Printf("%s[%s](%s) %s: %s\n", color, cLog.Name, formattedTime, Bold + string(level), Reset + encodedMsg)
}
