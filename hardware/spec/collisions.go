// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package spec

// CxObject is a bit flag identifying one of the six objects the video chip
// tracks for collision detection: the playfield, the ball, the two
// missiles and the two players.
type CxObject uint8

const (
	CxPlayfield CxObject = 1 << iota
	CxBall
	CxMissile0
	CxMissile1
	CxPlayer0
	CxPlayer1
)

// CxPair is a bit flag identifying one of the fifteen distinct object pairs
// a collision can occur between. The bit positions match the eight CXxx
// latches the real chip exposes, unpacked into a single word so collision
// bookkeeping can use one table lookup instead of eight register reads.
type CxPair uint16

const (
	CxMissile0Player1 CxPair = 1 << iota
	CxMissile0Player0
	CxMissile1Player0
	CxMissile1Player1
	CxPlayer0Playfield
	CxPlayer0Ball
	CxPlayer1Playfield
	CxPlayer1Ball
	CxMissile0Playfield
	CxMissile0Ball
	CxMissile1Playfield
	CxMissile1Ball
	CxBallPlayfield
	CxPlayer0Player1
	CxMissile0Missile1
)
