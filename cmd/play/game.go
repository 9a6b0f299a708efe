package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ctchen222/Tic-Tac-Toe-Solo/internal/game"
	"ctchen222/Tic-Tac-Toe-Solo/internal/session"
	"ctchen222/Tic-Tac-Toe-Solo/pkg/proto"
)

const prompt = "Your move (1-9, r to reset, q to quit): "

// play reads moves from in until "q" or EOF, writing the board after every turn.
func play(ctx context.Context, in io.Reader, out io.Writer, ctrl *session.Controller) error {
	scanner := bufio.NewScanner(in)
	renderBoard(out, ctrl.CurrentState().Cells)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			printStats(out, ctrl.Stats())
			return scanner.Err()
		}

		input := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(input) {
		case "":
			continue
		case "q", "quit":
			printStats(out, ctrl.Stats())
			return nil
		case "r", "reset":
			ctrl.Reset(ctx)
			fmt.Fprintln(out, "Board cleared.")
			renderBoard(out, ctrl.CurrentState().Cells)
			continue
		}

		cell, err := strconv.Atoi(input)
		if err != nil {
			fmt.Fprintf(out, "%q is not a cell number\n", input)
			continue
		}

		result, err := ctrl.ApplyHumanMove(ctx, cell)
		switch {
		case errors.Is(err, game.ErrInvalidCell), errors.Is(err, game.ErrCellOccupied):
			fmt.Fprintf(out, "Try again: %v\n", err)
			continue
		case err != nil:
			return err
		}

		if result.ComputerCell != 0 {
			fmt.Fprintf(out, "Computer plays %d\n", result.ComputerCell)
		}
		renderBoard(out, result.Board)

		if msg := proto.OutcomeMessage(result.Outcome); msg != "" {
			fmt.Fprintln(out, msg)
			fmt.Fprintln(out, "New game!")
			renderBoard(out, ctrl.CurrentState().Cells)
		}
	}
}

// renderBoard draws the grid, showing the number of each empty cell.
func renderBoard(w io.Writer, cells [game.BoardSize]game.PlayerMark) {
	var b strings.Builder
	for row := 0; row < 3; row++ {
		if row > 0 {
			b.WriteString("---+---+---\n")
		}
		for col := 0; col < 3; col++ {
			i := row*3 + col
			if col > 0 {
				b.WriteString("|")
			}
			mark := string(cells[i])
			if cells[i] == game.None {
				mark = strconv.Itoa(i + game.CellMin)
			}
			b.WriteString(" " + mark + " ")
		}
		b.WriteString("\n")
	}
	fmt.Fprint(w, b.String())
}

func printStats(w io.Writer, s session.Stats) {
	fmt.Fprintf(w, "Games: %d  You: %d  Computer: %d  Draws: %d\n",
		s.Games, s.HumanWins, s.ComputerWins, s.Draws)
}
