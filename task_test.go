package playsound

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTask_Lifecycle(t *testing.T) {
	task := newTask()

	// Running: Err is nil, Done is open
	assert.NoError(t, task.Err())
	select {
	case <-task.Done():
		t.Fatal("Done closed before finish")
	default:
	}

	wantErr := errors.New("playback blew up")
	task.finish(wantErr)

	<-task.Done()
	assert.ErrorIs(t, task.Wait(), wantErr)
	assert.ErrorIs(t, task.Err(), wantErr)

	// Wait is repeatable
	assert.ErrorIs(t, task.Wait(), wantErr)
}

func TestTask_FinishWithNil(t *testing.T) {
	task := newTask()
	task.finish(nil)

	assert.NoError(t, task.Wait())
	assert.NoError(t, task.Err())
}
