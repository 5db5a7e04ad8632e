/*	Package sequences provide implementations and operations for the sequence interface.



	Summary

	A sequence goal is to decouple the facts about the origin of the data,
	to the consumer who use the data.
	Most common scenario is to hide the fact if data is from a certain DB, STDIN or from somewhere else.
	This helps to design data consumers that doesn't rely on the data source concrete implementation,
	while still able to do composition and different kind of actions on the received data stream.
	A sequence represent multiple data that can be 0 and infinite.
	As a general rule of thumb, if the consumer is not the final destination of the data stream,
	the consumer should use the pipeline pattern, in order to avoid bottleneck with local resources.



	Why a pull based object instead of type safe channels to represent streams

	There are multiple approach to the same problem, and I only prefer this approach,
	because the error handling is easier trough this.
	In channel based pipeline pattern, you have to make sure
	that the information about the error is passed trough either trough some kind of separate error channel,
	or trough the message object it self that being passed around.
	In the case of the sequence pattern, this failure is communicated during the individual consumption,
	which leaves it up to you to propagate the error forward, or handle at the place.
	The suspension itself still happens on channels under the hood when the source is asynchronous,
	so a goroutine consuming a sequence cooperates with the scheduler instead of blocking a thread.



	Resources

	https://en.wikipedia.org/wiki/Iterator_pattern
	https://en.wikipedia.org/wiki/Pipeline_(software)

*/
package sequences
